package utils

import (
	"fmt"
	"log"
	"os"
)

// NewLog opens an append-only file logger for one component. The component
// name prefixes every line so the dated log dir stays greppable when several
// components log at once (creator, backend, executors, network).
func NewLog(dir, name string) *log.Logger {
	fileName := fmt.Sprintf("%s%s.log", dir, name)
	file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		panic(err)
	}
	logger := log.New(file, fmt.Sprintf("[%s] ", name), log.LstdFlags|log.Lmicroseconds)
	return logger
}
