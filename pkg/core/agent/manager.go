package agent

import (
	"fmt"
	"sort"
	"sync"

	"merger_maestro/pkg/core/llm"

	"gopkg.in/yaml.v2"
)

// MemoWriter is the agent type that drafts investment memos.
const MemoWriter = "memo_writer"

type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

type AgentConfig struct {
	Provider    string `yaml:"provider"` // Optional override
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// ParseConfig decodes a models.yaml document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse agent config: %w", err)
	}
	if cfg.ActiveProvider == "" {
		cfg.ActiveProvider = "gemini"
	}
	return cfg, nil
}

type Manager struct {
	mu        sync.RWMutex
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return NewManagerWithProviders(config, map[string]llm.Provider{
		"gemini":   &llm.GeminiProvider{},
		"deepseek": &llm.DeepSeekProvider{},
		"qwen":     &llm.QwenProvider{},
	})
}

// NewManagerWithProviders builds a manager over an explicit provider set.
func NewManagerWithProviders(config Config, providers map[string]llm.Provider) *Manager {
	return &Manager{config: config, providers: providers}
}

func (m *Manager) GetProvider(agentType string) llm.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// 1. Check for agent-specific override
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}

	// 2. Use global active provider
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}

	// 3. Fallback
	return m.providers["gemini"]
}

// ProviderName reports which provider name GetProvider resolves to.
func (m *Manager) ProviderName(agentType string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if _, ok := m.providers[agentConfig.Provider]; ok {
			return agentConfig.Provider
		}
	}
	if _, ok := m.providers[m.config.ActiveProvider]; ok {
		return m.config.ActiveProvider
	}
	return "gemini"
}

// Options returns per-agent call options (currently the model override).
func (m *Manager) Options(agentType string) map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	opts := map[string]interface{}{}
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Model != "" {
		opts["model"] = agentConfig.Model
	}
	return opts
}

// GetProviderByName retrieves a provider instance by its specific name (e.g. "deepseek", "gemini")
func (m *Manager) GetProviderByName(name string) llm.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.providers[name]
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	fmt.Printf("[AGENT] Global provider set to: %s\n", newProvider)
	return nil
}

func (m *Manager) GetActiveProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveProvider
}

// Available lists registered provider names, sorted.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
