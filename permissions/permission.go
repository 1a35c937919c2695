package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up the endpoint entry for a chi route pattern and
// method. Endpoints not listed get the zero Permission, which means the
// request still has to be authenticated but no role is enforced.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	// chi reports collection routes with a trailing slash.
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
