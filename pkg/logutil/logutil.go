// Package logutil provides logging utilities.
//
// Loggers obtained from GetLogger all write to the same output, which is
// discarded until SetOutput or SetOutputFile is called.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mutex   sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(newOut io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	setOutput(newOut, nil)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, truncating it. If the name is empty, log output is
// discarded.
func SetOutputFile(name string) error {
	if name == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	mutex.Lock()
	defer mutex.Unlock()
	setOutput(file, file)
	return nil
}

// Must be called with mutex held.
func setOutput(newOut io.Writer, newFile *os.File) {
	if outFile != nil {
		outFile.Close()
	}
	out, outFile = newOut, newFile
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
