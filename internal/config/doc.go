// Package config loads northstar configuration from the environment.
//
// A .env file in the working directory is read first when present.
// Variables already set in the environment take precedence.
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - StoreConfig: which backend the CLI opens (memory, postgres, surrealdb)
//   - PostgresConfig: database/sql pool settings
//   - DatabaseConfig: SurrealDB connection settings
//   - LimitsConfig: soft caps for active goals and weekly tasks
//
// # Environment Variables
//
//	NORTHSTAR_ENV            - development, production or test (default: development)
//	LOG_LEVEL                - debug, info, warn, error (default: info)
//	DEFAULT_TIMEZONE         - IANA zone for week starts (default: UTC)
//	STORE_DRIVER             - memory, postgres or surrealdb (default: memory)
//	POSTGRES_URL             - PostgreSQL connection URL
//	POSTGRES_MAX_OPEN_CONNS  - pool size (default: 10)
//	DB_HOST, DB_PORT         - SurrealDB address (default: localhost:8000)
//	DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//	ACTIVE_GOAL_CAP          - default 12
//	WEEKLY_TASK_CAP          - default 7
//	WEEKLY_TASK_MIN          - advisory minimum, default 2
package config
