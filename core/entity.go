package core

// Entity is a stable identifier shared by every pool and index
// Zero is reserved as "no entity" and is never handed out
type Entity uint64

// EntityNone marks an empty weak reference
const EntityNone Entity = 0
