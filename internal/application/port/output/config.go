package output

import "billing-agent/internal/domain/entity"

type ConfigPort interface {
	Get(key string) string
	MustGet(key string) string
	GetWithDefault(key string, defaultValue string) string
	VoiceLines() entity.VoiceLines
}
