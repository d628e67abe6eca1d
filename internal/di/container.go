package di

import (
	"context"
	"fmt"

	"billing-agent/internal/adapter/tool"
	"billing-agent/internal/application/port/input"
	"billing-agent/internal/application/port/output"
	"billing-agent/internal/application/service"
	"billing-agent/internal/domain/entity"
	"billing-agent/internal/infrastructure/artifact/memory"
	"billing-agent/internal/infrastructure/llm/openrouter"
	"billing-agent/internal/infrastructure/logger"
	"billing-agent/internal/infrastructure/pdf"
	"billing-agent/internal/infrastructure/prompts"
	"billing-agent/internal/infrastructure/userinteraction"
	"billing-agent/internal/usecase/executor"
)

const AppName = "billing_specialist"

type Container struct {
	Artifacts    output.ArtifactStore
	Logger       output.LoggerPort
	Tools        output.ToolRegistry
	TaskExecutor input.TaskExecutor
	SystemPrompt string
}

type Config struct {
	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterBaseURL string
	LogHTTP           bool
	LogLevel          string
	TaskName          string
	VoiceLines        entity.VoiceLines
	MaxIterations     int
	Quiet             bool
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.TaskName, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	systemPrompt, err := prompts.GenerateBillingPrompt(
		prompts.BillingPrompt,
		prompts.NewBillingPromptData(cfg.VoiceLines, entity.DefaultChargeRules),
	)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to generate system prompt: %w", err)
	}

	llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	if cfg.OpenRouterBaseURL != "" {
		llmCfg.BaseURL = cfg.OpenRouterBaseURL
	}
	llmCfg.LogHTTP = cfg.LogHTTP
	llmCfg.Logger = log
	llm := openrouter.NewOpenRouterAdapter(llmCfg)

	store := memory.NewStore()

	tools := service.NewToolRegistry()
	registerBillingTools(tools, store, log)

	opts := []executor.Option{executor.WithMaxIterations(cfg.MaxIterations)}
	if !cfg.Quiet {
		opts = append(opts, executor.WithUserInteraction(userinteraction.NewConsoleUserInteraction()))
	}
	uc := executor.New(llm, tools, log, systemPrompt, opts...)

	log.Info("Container initialized", "model", llmCfg.Model, "tools", len(tools.All()))

	return &Container{
		Artifacts:    store,
		Logger:       log,
		Tools:        tools,
		TaskExecutor: uc,
		SystemPrompt: systemPrompt,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerBillingTools(registry *service.ToolRegistryImpl, store output.ArtifactStore, log output.LoggerPort) {
	registry.Register(tool.NewPDFTextTool(store, pdf.NewExtractor(log), log))
	registry.Register(tool.NewSaveCSVTool(store, log))
}
