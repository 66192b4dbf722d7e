// Package session holds server-side session state: the record stores that
// persist session-id → user-id mappings and the [Store] policy that layers
// identifier generation and lazy expiration on top of them.
//
// # Design
//
// [RecordStore] is the storage contract. [MemoryStore] is the in-process
// variant (mutex-guarded map, process lifetime). [RedisStore] and
// [PostgresStore] delegate to external collaborators; their calls are
// synchronous and carry no retry. Expiration is lazy: an expired record is
// detected at lookup time and left in place, there is no background sweeper.
//
// # What this package must NOT do
//
//   - Resolve user IDs to users. That is the strategy layer's job.
//   - Raise on unknown, expired, or malformed sessions through [Store];
//     the policy methods report absence.
package session
