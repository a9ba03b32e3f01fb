package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// DefaultLogger writes "LEVEL msg k=v ..." lines. args are alternating
// key/value pairs, keys must be strings.
type DefaultLogger struct {
	wr io.Writer
	mu sync.Mutex
}

func NewDefaultLogger(wr io.Writer) Logger {
	s := &DefaultLogger{}
	s.wr = wr
	return s
}

func (s *DefaultLogger) Info(msg string, args ...interface{}) {
	s.log("INFO", msg, args...)
}

func (s *DefaultLogger) Debug(msg string, args ...interface{}) {
	s.log("DEBUG", msg, args...)
}

func (s *DefaultLogger) log(kind string, msg string, args ...interface{}) {
	write := func(format string, args ...interface{}) {
		s.mu.Lock()
		defer s.mu.Unlock()
		p := fmt.Sprintf(format, args...)
		_, err := s.wr.Write([]byte(p + "\n"))
		if err != nil {
			panic(err)
		}
	}
	kvs, err := formatArgs(args)
	if err != nil {
		write("ERROR Logger invalid args passed. Msg: %v Args: %v Err: %v", msg, args, err)
		return
	}
	if kvs == "" {
		write("%v %v", kind, msg)
		return
	}
	write("%v %v %v", kind, msg, kvs)
}

func formatArgs(args []interface{}) (string, error) {
	if len(args)%2 != 0 {
		return "", errors.New("len of args not even")
	}
	res := []string{}
	for i := 0; i < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			return "", errors.New("key arg passed in not a string")
		}
		res = append(res, k+"="+fmt.Sprintf("%v", args[i+1]))
	}
	return strings.Join(res, " "), nil
}
