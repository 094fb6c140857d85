package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// NewClient returns a service-role Supabase client. It bypasses row-level
// security, so it must only serve reads the API filters itself.
func NewClient(supabaseURL, serviceRoleKey string) (*supabase.Client, error) {
	client, err := supabase.NewClient(supabaseURL, serviceRoleKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}
