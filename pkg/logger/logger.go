package logger

import (
	"go.uber.org/zap"
)

const EventFinishedSuccessfully = "event successfully finished"

func NewLogger() *zap.SugaredLogger {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	return log.Sugar()
}
