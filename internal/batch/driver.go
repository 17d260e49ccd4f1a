package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Klingon-tech/airgap/internal/keygen"
	"github.com/Klingon-tech/airgap/internal/log"
	"github.com/Klingon-tech/airgap/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Stage derives the table value for one index of a seed.
type Stage func(seed keygen.Seed, index uint64) (string, error)

// WIFStage emits uncompressed-key WIFs.
func WIFStage(net types.Network) Stage {
	return func(seed keygen.Seed, index uint64) (string, error) {
		scalar := seed.Scalar(index)
		defer scalar.Zero()
		return keygen.EncodePrivateKey(scalar, net)
	}
}

// PubKeyStage emits lowercase hex SEC1 uncompressed public keys.
func PubKeyStage() Stage {
	return func(seed keygen.Seed, index uint64) (string, error) {
		scalar := seed.Scalar(index)
		defer scalar.Zero()
		pub, err := keygen.DerivePublicKey(scalar)
		if err != nil {
			return "", err
		}
		return pub.Hex(), nil
	}
}

// AddressStage emits P2PKH addresses computed straight from the seed.
func AddressStage(net types.Network) Stage {
	return func(seed keygen.Seed, index uint64) (string, error) {
		keys, err := seed.Derive(index, net)
		if err != nil {
			return "", err
		}
		return keys.Address.String(), nil
	}
}

// Driver maps pipeline stages over ranges with bounded parallelism. Results
// are always returned in input order.
type Driver struct {
	workers int
	log     zerolog.Logger
}

// NewDriver creates a Driver. workers < 1 means one worker per CPU.
func NewDriver(workers int) *Driver {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Driver{workers: workers, log: log.Batch}
}

// DeriveRange runs stage for every index of r and returns one record per
// index in ascending order. The first failing index aborts the batch.
func (d *Driver) DeriveRange(ctx context.Context, seed keygen.Seed, r Range, stage Stage) ([]Record, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	d.log.Info().
		Uint64("start", r.Start).
		Uint64("count", r.Count).
		Int("workers", d.workers).
		Object("seed", seed).
		Msg("Deriving range")
	defer log.Benchmark(d.log, "derive_range")()

	return d.mapOrdered(ctx, int(r.Count), func(i int) (Record, error) {
		idx := r.Index(i)
		v, err := stage(seed, idx)
		if err != nil {
			return Record{}, fmt.Errorf("index %d: %w", idx, err)
		}
		return Record{Index: idx, Value: v}, nil
	})
}

// AddressesFromPubKeys converts (index, public key hex) records into
// (index, address) records, keeping input order and indices.
func (d *Driver) AddressesFromPubKeys(ctx context.Context, in []Record, net types.Network) ([]Record, error) {
	d.log.Info().
		Int("rows", len(in)).
		Int("workers", d.workers).
		Str("network", net.Name).
		Msg("Converting public keys")
	defer log.Benchmark(d.log, "addresses_from_pubkeys")()

	return d.mapOrdered(ctx, len(in), func(i int) (Record, error) {
		rec := in[i]
		pub, err := types.ParsePublicKeyHex(rec.Value)
		if err != nil {
			return Record{}, fmt.Errorf("row %d (index %d): %w", i+1, rec.Index, err)
		}
		addr, err := keygen.DeriveAddress(pub[:], net)
		if err != nil {
			return Record{}, fmt.Errorf("row %d (index %d): %w", i+1, rec.Index, err)
		}
		return Record{Index: rec.Index, IndexText: rec.IndexText, Value: addr}, nil
	})
}

// mapOrdered evaluates fn(0..n-1) on up to d.workers goroutines and stores
// each result at its own slot. Work is scheduled in ascending order and
// scheduling stops at the first failure, so the reported error is always the
// one with the lowest position.
func (d *Driver) mapOrdered(ctx context.Context, n int, fn func(i int) (Record, error)) ([]Record, error) {
	out := make([]Record, n)
	errs := make([]error, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			rec, err := fn(i)
			if err != nil {
				errs[i] = err
				return err
			}
			out[i] = rec
			return nil
		})
	}
	waitErr := g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
