package ports

import "context"

// AccountPort defines the interface for updating account profiles.
type AccountPort interface {
	// SetDisplayName gives the account a display name and merges metadata into its profile.
	SetDisplayName(ctx context.Context, userID, displayName string, metadata map[string]interface{}) error
}
