// ABOUTME: SQL schema definition for the fitness database.
// ABOUTME: Five tables: credentials, body parts, workouts, logs, sets.
package storage

// DDL for the baseline (v1) schema. Each statement uses IF NOT EXISTS so
// re-running creation is harmless.
const (
	createUserCredentials = `CREATE TABLE IF NOT EXISTS user_credentials (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

	createBodyParts = `CREATE TABLE IF NOT EXISTS body_parts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`

	createWorkouts = `CREATE TABLE IF NOT EXISTS workouts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    body_part_id INTEGER NOT NULL REFERENCES body_parts(id),
    name TEXT NOT NULL
);`

	createWorkoutLogs = `CREATE TABLE IF NOT EXISTS workout_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    workout_id INTEGER NOT NULL REFERENCES workouts(id),
    logged_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

	createWorkoutSets = `CREATE TABLE IF NOT EXISTS workout_sets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    workout_log_id INTEGER NOT NULL REFERENCES workout_logs(id),
    set_number INTEGER NOT NULL,
    reps INTEGER NOT NULL,
    weight REAL NOT NULL,
    performed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
)

// createStatements lists the CREATE TABLE statements in dependency order.
var createStatements = []string{
	createUserCredentials,
	createBodyParts,
	createWorkouts,
	createWorkoutLogs,
	createWorkoutSets,
}

// defaultBodyParts is the reference set seeded on first run.
var defaultBodyParts = []string{"Chest", "Back", "Legs", "Shoulders", "Arms", "Abs"}
