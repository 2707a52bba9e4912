package migrations

// All returns the schema migrations in the order they must be applied.
// Each table references the one created before it.
func All() []Migration {
	return []Migration{
		createUsers,
		createOrganizations,
		createWorkspaces,
		createGroups,
		createBookmarks,
	}
}
