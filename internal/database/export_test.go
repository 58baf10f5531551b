package database

// MigrateWith exposes migrate to the external integration tests
var MigrateWith = migrate
