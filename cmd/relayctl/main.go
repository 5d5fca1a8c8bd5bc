package main

import (
	"fmt"
	"os"

	"translation-relay/internal/cli"
	"translation-relay/internal/logging"
	"translation-relay/internal/text_translator"
	"translation-relay/internal/third_party/mymemory"
	"translation-relay/pkg/types"
)

func main() {
	cfg, err := types.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := mymemory.NewMyMemoryClient(cfg.MyMemory)
	translator := text_translator.NewTextTranslatorService(logger, client)

	if err := cli.CreateRootCommand(translator).Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
