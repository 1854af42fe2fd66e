package cerror

import (
	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	HttpStatusCode int             `json:"httpStatus"`
	Message        string          `json:"message"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
	cause          error
}

func (cerr *CustomError) Error() string {
	if cerr.cause != nil {
		return cerr.LogMessage + ": " + cerr.cause.Error()
	}

	return cerr.LogMessage
}

func (cerr *CustomError) Unwrap() error {
	return cerr.cause
}

func (cerr *CustomError) SerializeCerror() []byte {
	marshalledToByte, _ := json.Marshal(cerr)

	return marshalledToByte
}
