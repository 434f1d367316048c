package supabase

import (
	"fmt"

	"ai-travel-planner/pkg/config"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// NewClient creates a Supabase client for the configured project. The
// anon key is sufficient here: the service only drives GoTrue auth flows
// with it, never privileged storage operations.
func NewClient(cfg *config.SupabaseConfig, logger *zap.Logger) (*supabase.Client, error) {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return nil, fmt.Errorf("supabase URL and anon key must be configured")
	}

	client, err := supabase.NewClient(cfg.URL, cfg.AnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	logger.Info("Supabase client initialized", zap.String("url", cfg.URL))

	return client, nil
}
