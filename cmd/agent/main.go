package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"billing-agent/internal/di"
	"billing-agent/internal/domain/entity"
	"billing-agent/internal/infrastructure/env"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const defaultTask = "Extract the charges from the uploaded bill and save them as CSV."

var rootCmd = &cobra.Command{
	Use:   "billing-agent",
	Short: "Extract bill charges from a PDF into a CSV with an LLM agent",
	Long: `billing-agent uploads PDF bills into a fresh session, lets the billing
specialist model read them through its tools, and writes every artifact the
agent saved (normally extracted_charges.csv) into the output directory.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringSlice("pdf", nil, "PDF bill to upload into the session (repeatable)")
	rootCmd.Flags().String("out", ".", "directory for artifacts saved by the agent")
	rootCmd.Flags().String("task", "", "instruction for the agent (read from stdin when empty)")
	rootCmd.Flags().String("user", "local", "user id owning the session")
	rootCmd.Flags().Duration("timeout", 10*time.Minute, "overall run timeout")
	rootCmd.Flags().Bool("quiet", false, "do not print agent progress")
}

func run(cmd *cobra.Command, args []string) error {
	envService := env.NewEnvService()

	pdfs, _ := cmd.Flags().GetStringSlice("pdf")
	outDir, _ := cmd.Flags().GetString("out")
	task, _ := cmd.Flags().GetString("task")
	userID, _ := cmd.Flags().GetString("user")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	quiet, _ := cmd.Flags().GetBool("quiet")

	if task == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "\nEnter a task for the agent (empty for default):")
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		task = strings.TrimSpace(line)
	}
	if task == "" {
		task = defaultTask
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	container, err := di.NewContainer(ctx, di.Config{
		OpenRouterAPIKey:  envService.MustGet("OPENROUTER_API_KEY"),
		OpenRouterModel:   envService.Get("OPENROUTER_MODEL_NAME"),
		OpenRouterBaseURL: envService.Get("OPENROUTER_BASE_URL"),
		LogHTTP:           envService.GetBool("LLM_HTTP_LOGGING", false),
		LogLevel:          envService.GetWithDefault("LOG_LEVEL", "debug"),
		TaskName:          task,
		VoiceLines:        envService.VoiceLines(),
		MaxIterations:     envService.GetInt("MAX_ITERATIONS", 0),
		Quiet:             quiet,
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	session := entity.Session{AppName: di.AppName, UserID: userID, ID: uuid.NewString()}
	log := container.Logger.WithField("session", session.ID)

	for _, path := range pdfs {
		info, err := uploadFile(ctx, container.Artifacts, session, path)
		if err != nil {
			return err
		}
		log.Info("Artifact uploaded", "name", info.Name, "mimeType", info.MimeType, "version", info.Version)
	}

	before, err := snapshotVersions(ctx, container.Artifacts, session)
	if err != nil {
		return err
	}

	log.Info("Task started", "task", task)
	fmt.Fprintln(cmd.OutOrStdout(), "\nAgent started...")

	result, err := container.TaskExecutor.Execute(ctx, session, task)
	if err != nil {
		log.Error("Task failed", "error", err)
		return fmt.Errorf("execution failed: %w", err)
	}

	log.Info("Task completed", "iterations", result.Iterations)
	fmt.Fprintln(cmd.OutOrStdout(), "\nFINAL ANSWER:")
	fmt.Fprintln(cmd.OutOrStdout(), result.FinalAnswer)

	written, err := exportNewArtifacts(ctx, container.Artifacts, session, before, outDir)
	if err != nil {
		return err
	}
	for _, path := range written {
		log.Info("Artifact exported", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
