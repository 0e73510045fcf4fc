package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"learner": {
		"exam:view",
		"examlog:append",
	},
	"coach": {
		"content:browse",
		"exam:create",
		"exam:update",
		"exam:delete",
		"exam:view",
		"report:view",
	},
	"admin": {
		"*", // everything
	},
}
