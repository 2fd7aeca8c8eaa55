package secrets

import "context"

const kvKeyPrefix = "secret_"

// KV is the subset of storage.Store used by KVBackend.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// KVBackend keeps sealed secrets in the shared key-value store.
type KVBackend struct {
	kv KV
}

func NewKVBackend(kv KV) *KVBackend {
	return &KVBackend{kv: kv}
}

func (b *KVBackend) Put(ctx context.Context, name string, sealed []byte) error {
	return b.kv.Set(ctx, kvKeyPrefix+name, sealed)
}

func (b *KVBackend) Get(ctx context.Context, name string) ([]byte, error) {
	return b.kv.Get(ctx, kvKeyPrefix+name)
}

func (b *KVBackend) Delete(ctx context.Context, name string) error {
	return b.kv.Delete(ctx, kvKeyPrefix+name)
}
