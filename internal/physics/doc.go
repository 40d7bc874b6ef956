// Package physics holds the per-frame update rules of the accretion disk.
//
// Every pass works on a flat slice of [Particle] records and the immutable
// [BlackHole] parameters, mutating the records in place:
//
//   - [AdvanceOrbits]: time-dilated phase advance, inward drift and respawn
//   - [WarpGrid]: space-time well depth for each grid vertex
//   - [UpdateTemperatures]: radius-dependent heating
//   - [ApplyShading]: Doppler shift and relativistic beaming
//
// Seeding is done once with [SeedDisk] and [SeedStars]. All randomness comes
// from an injected *rand.Rand so runs are reproducible:
//
//	rng := rand.New(rand.NewSource(42))
//	bh := physics.NewBlackHole(10, 1, 0.7)
//	disk := physics.SeedDisk(bh, physics.DefaultDiskConfig(), rng)
//	physics.AdvanceOrbits(bh, disk, physics.OrbitConfig{RespawnJitter: 20}, t, dt, rng)
package physics
