// Package config provides configuration management for the slip39 CLI tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/keyforge-io/slip39/pkg/crypto/slip39"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	SLIP039  SLIP039Config   `json:"slip039"`
	Security SecurityConfig  `json:"security"`
	UI       UIConfig        `json:"ui"`
	Storage  StorageConfig   `json:"storage"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Threshold      int  `json:"threshold"`       // Default: 2
	Shares         int  `json:"shares"`          // Default: 3
	GroupThreshold int  `json:"group_threshold"` // Default: 1
	Interactive    bool `json:"interactive"`     // Default: false
}

// SLIP039Config contains SLIP-0039 specific settings
type SLIP039Config struct {
	IterationExponent int    `json:"iteration_exponent"` // Default: 1 (5000 iterations/round)
	DefaultGroups     string `json:"default_groups"`     // Default group configuration
	Extendable        bool   `json:"extendable"`         // Allow extendable backup shares
}

// SecurityConfig contains security-related settings
type SecurityConfig struct {
	RequirePassphrase   bool   `json:"require_passphrase"`    // Force passphrase use
	MinPassphraseLength int    `json:"min_passphrase_length"` // Minimum passphrase length
	WipeMemory          bool   `json:"wipe_memory"`           // Secure memory wiping
	WarningLevel        string `json:"warning_level"`         // none, normal, paranoid
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor       bool   `json:"use_color"`       // Enable colored output
	Verbosity      string `json:"verbosity"`       // quiet, normal, verbose
	ConfirmActions bool   `json:"confirm_actions"` // Require confirmation
}

// StorageConfig contains storage-related settings
type StorageConfig struct {
	DefaultPath     string `json:"default_path"`     // Default storage directory
	AutoSave        bool   `json:"auto_save"`        // Auto-save shares
	FilePermissions string `json:"file_permissions"` // Default file permissions
}

// ShareProfile is a saved split configuration for quick reuse.
type ShareProfile struct {
	Name           string                      `json:"name"`
	Description    string                      `json:"description"`
	GroupThreshold byte                        `json:"group_threshold"`
	Groups         []slip39.GroupConfiguration `json:"groups"`
	Extendable     bool                        `json:"extendable"`
	Tags           []string                    `json:"tags"`
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
	profiles   map[string]*ShareProfile
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() (*ConfigManager, error) {
	cm := &ConfigManager{
		profiles: make(map[string]*ShareProfile),
	}

	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	cm.configPath = configPath

	if err := cm.LoadConfig(); err != nil {
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	if err := cm.LoadProfiles(); err != nil {
		cm.profiles = make(map[string]*ShareProfile)
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Threshold:      2,
			Shares:         3,
			GroupThreshold: 1,
			Interactive:    false,
		},
		SLIP039: SLIP039Config{
			IterationExponent: int(slip39.DefaultIterationExponent),
			DefaultGroups:     "",
			Extendable:        false,
		},
		Security: SecurityConfig{
			RequirePassphrase:   false,
			MinPassphraseLength: 8,
			WipeMemory:          true,
			WarningLevel:        "normal",
		},
		UI: UIConfig{
			UseColor:       true,
			Verbosity:      "normal",
			ConfirmActions: true,
		},
		Storage: StorageConfig{
			DefaultPath:     "~/.slip39/shares",
			AutoSave:        false,
			FilePermissions: "0600",
		},
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// LoadProfiles loads saved sharing profiles
func (cm *ConfigManager) LoadProfiles() error {
	profilesPath := filepath.Join(filepath.Dir(cm.configPath), "profiles.json")

	data, err := os.ReadFile(profilesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	profiles := make(map[string]*ShareProfile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("failed to parse profiles: %w", err)
	}

	cm.profiles = profiles
	return nil
}

// SaveProfiles saves sharing profiles to disk
func (cm *ConfigManager) SaveProfiles() error {
	profilesPath := filepath.Join(filepath.Dir(cm.configPath), "profiles.json")

	data, err := json.MarshalIndent(cm.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(profilesPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}

	return nil
}

// AddProfile adds a new sharing profile
func (cm *ConfigManager) AddProfile(profile *ShareProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	cm.profiles[profile.Name] = profile
	return cm.SaveProfiles()
}

// GetProfile retrieves a sharing profile by name
func (cm *ConfigManager) GetProfile(name string) (*ShareProfile, error) {
	profile, exists := cm.profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile '%s' not found", name)
	}
	return profile, nil
}

// ListProfiles returns all available profiles
func (cm *ConfigManager) ListProfiles() []*ShareProfile {
	profiles := make([]*ShareProfile, 0, len(cm.profiles))
	for _, profile := range cm.profiles {
		profiles = append(profiles, profile)
	}
	return profiles
}

// DeleteProfile removes a sharing profile
func (cm *ConfigManager) DeleteProfile(name string) error {
	if _, exists := cm.profiles[name]; !exists {
		return fmt.Errorf("profile '%s' not found", name)
	}

	delete(cm.profiles, name)
	return cm.SaveProfiles()
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	if customPath := os.Getenv("SLIP39_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "slip39", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "slip39", "config.json"), nil
}

// ApplyDefaults fills in zero-valued fields of a profile from the
// manager's configured defaults.
func (cm *ConfigManager) ApplyDefaults(profile *ShareProfile) {
	if profile.GroupThreshold == 0 {
		profile.GroupThreshold = byte(cm.config.Defaults.GroupThreshold)
	}

	if len(profile.Groups) == 0 {
		profile.Groups = slip39.SimpleConfiguration(
			byte(cm.config.Defaults.Threshold),
			byte(cm.config.Defaults.Shares),
		)
	}
}

// ValidatePassphrasePolicy checks a passphrase against the security policy.
func (cm *ConfigManager) ValidatePassphrasePolicy(passphrase string) error {
	if cm.config.Security.RequirePassphrase && passphrase == "" {
		return fmt.Errorf("passphrase is required by security policy")
	}

	if passphrase != "" && len(passphrase) < cm.config.Security.MinPassphraseLength {
		return fmt.Errorf("passphrase must be at least %d characters",
			cm.config.Security.MinPassphraseLength)
	}

	return nil
}
