package executor

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"billing-agent/internal/application/port/input"
	"billing-agent/internal/application/port/output"
	"billing-agent/internal/domain/entity"
)

var _ input.TaskExecutor = (*UseCase)(nil)

const (
	defaultMaxIterations = 15
	maxObservationLen    = 60000
	errorPrefix          = "Error: "
)

type UseCase struct {
	llm             output.LLMPort
	tools           output.ToolRegistry
	logger          output.LoggerPort
	userInteraction output.UserInteractionPort
	systemPrompt    string
	maxIterations   int
}

type Option func(*UseCase)

func WithUserInteraction(ui output.UserInteractionPort) Option {
	return func(uc *UseCase) { uc.userInteraction = ui }
}

func WithMaxIterations(n int) Option {
	return func(uc *UseCase) {
		if n > 0 {
			uc.maxIterations = n
		}
	}
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	logger output.LoggerPort,
	systemPrompt string,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		llm:           llm,
		tools:         tools,
		logger:        logger,
		systemPrompt:  systemPrompt,
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *UseCase) Execute(ctx context.Context, session entity.Session, task string) (*input.ExecuteResult, error) {
	log := uc.logger.WithField("session", session.ID)
	log.Info("Executing task", "task", task)

	ctx = entity.WithSession(ctx, session)

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: uc.systemPrompt},
		{Role: entity.RoleUser, Content: task},
	}

	toolDefs := uc.tools.Definitions()

	for iteration := 1; iteration <= uc.maxIterations; iteration++ {
		if uc.userInteraction != nil {
			uc.userInteraction.ShowIteration(ctx, iteration, uc.maxIterations)
		}
		log.Debug("Starting iteration", "iteration", iteration)

		resp, err := uc.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: 0.0,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			log.Info("Task completed", "iterations", iteration)
			return &input.ExecuteResult{
				FinalAnswer: resp.Message.Content,
				Iterations:  iteration,
			}, nil
		}

		if resp.Message.Content != "" && uc.userInteraction != nil {
			uc.userInteraction.ShowThinking(ctx, resp.Message.Content)
		}

		for _, tc := range resp.Message.ToolCalls {
			if uc.userInteraction != nil {
				uc.userInteraction.ShowToolStart(ctx, tc.Name, tc.Arguments)
			}

			observation := uc.executeTool(ctx, log, tc)

			if uc.userInteraction != nil {
				uc.userInteraction.ShowToolResult(ctx, tc.Name, observation, strings.HasPrefix(observation, errorPrefix))
			}

			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    observation,
			})
		}
	}

	return nil, fmt.Errorf("max iterations (%d) exceeded", uc.maxIterations)
}

func (uc *UseCase) executeTool(ctx context.Context, log output.LoggerPort, tc entity.ToolCall) string {
	tool, ok := uc.tools.Get(entity.ToolName(tc.Name))
	if !ok {
		log.Warn("Unknown tool called", "name", tc.Name)
		return fmt.Sprintf("Error: unknown tool '%s'", tc.Name)
	}

	log.Info("Executing tool", "name", tc.Name, "args", truncate(tc.Arguments, 500))

	result, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		log.Error("Tool execution failed", "name", tc.Name, "error", err)
		return errorPrefix + err.Error()
	}

	if len(result) > maxObservationLen {
		result = cutAtRune(result, maxObservationLen) + "\n... (truncated)"
	}

	log.Debug("Tool completed", "name", tc.Name, "resultLen", len(result))
	return result
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return cutAtRune(s, maxLen) + "..."
}

// cutAtRune returns at most n bytes of s without splitting a UTF-8 sequence.
func cutAtRune(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
