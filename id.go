package javarand

import (
	"time"

	"github.com/alaingilbert/javarand/internal/utils"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UUID returns a version 4 UUID whose random bytes come from the generator,
// so a seeded Rand yields a reproducible UUID sequence.
func (r *Rand) UUID() uuid.UUID {
	return utils.First(uuid.NewRandomFromReader(r))
}

// ULID returns a ULID whose timestamp part comes from t and whose entropy
// part is drawn from the generator.
func (r *Rand) ULID(t time.Time) ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(t), r)
}
