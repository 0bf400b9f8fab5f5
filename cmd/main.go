package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"docchat-client/handler"
	"docchat-client/internal/config"
	"docchat-client/internal/domain"
	"docchat-client/internal/integrations/chatapi"
	"docchat-client/internal/integrations/tokenstore"
	"docchat-client/internal/integrations/uploader"
	"docchat-client/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:          "docchat",
		Short:        "Command-line client for the docchat backend",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the YAML config file")
	root.AddCommand(newSendCmd(&cfgPath))
	return root
}

func newSendCmd(cfgPath *string) *cobra.Command {
	var (
		message string
		wait    bool
	)
	cmd := &cobra.Command{
		Use:   "send [files...]",
		Short: "Create a chat with an optional message and attachments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel)

			if cfg.API.BaseURL == "" {
				return fmt.Errorf("api.baseUrl is not configured (set it in the config file or DOCCHAT_API_URL)")
			}

			files, err := readLocalFiles(args)
			if err != nil {
				return err
			}

			tokens, err := tokenstore.New(cfg.API.TokenFile)
			if err != nil {
				return err
			}
			api, err := chatapi.NewClient(tokens, cfg.API.BaseURL, chatapi.WithHTTPClient(&http.Client{
				Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
			}))
			if err != nil {
				return err
			}
			transmitter := uploader.New(uploader.WithHTTPClient(&http.Client{
				Timeout: time.Duration(cfg.Upload.TimeoutSeconds) * time.Second,
			}))

			svc, err := usecase.NewChatService(api, transmitter, api, domain.InferDocType, logger)
			if err != nil {
				return err
			}
			h, err := handler.NewHandler(svc, cfg.Upload.MaxSizeBytes)
			if err != nil {
				return err
			}

			res, err := h.Submit(cmd.Context(), handler.Submission{Message: message, Files: files})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Route)

			if wait {
				if err := svc.Wait(); err != nil {
					logger.Warn("some attachments did not finish uploading", "err", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text")
	cmd.Flags().BoolVar(&wait, "wait", true, "wait for attachment uploads to finish before exiting")
	return cmd
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func readLocalFiles(paths []string) ([]domain.LocalFile, error) {
	files := make([]domain.LocalFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read attachment %s: %w", p, err)
		}
		files = append(files, domain.LocalFile{Name: filepath.Base(p), Bytes: data})
	}
	return files, nil
}
