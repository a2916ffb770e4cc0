package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/jacentio/propman/internal/logger"
	"github.com/jacentio/propman/repository"
	"github.com/jacentio/propman/stream"
)

func main() {
	_ = godotenv.Load()

	log := logger.Setup(os.Getenv("PROPMAN_DEBUG") == "true")

	decoder, err := repository.NewDecoder(repository.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build decoder")
	}

	h := stream.NewHandler(decoder, stream.NewLogSink(log), log)
	lambda.Start(logger.Invocations(log, h.Handle))
}
