package estoque

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ListaCache guarda o JSON das listas mais pedidas no Redis. Sem Redis
// configurado tudo vira no-op e as leituras vão direto ao Postgres.
type ListaCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

const chaveProdutos = "painel:produtos:lista"

var cache = &ListaCache{ttl: 60 * time.Second, logger: zap.NewNop()}

func ConfigurarCache(client *redis.Client, logger *zap.Logger) {
	cache.client = client
	if logger != nil {
		cache.logger = logger
	}
}

func (lc *ListaCache) Buscar(ctx context.Context, chave string) ([]byte, bool) {
	if lc.client == nil {
		return nil, false
	}
	dados, err := lc.client.Get(ctx, chave).Bytes()
	if err != nil {
		if err != redis.Nil {
			lc.logger.Debug("cache indisponível na leitura", zap.String("chave", chave), zap.Error(err))
		}
		return nil, false
	}
	return dados, true
}

func (lc *ListaCache) Gravar(ctx context.Context, chave string, dados []byte) {
	if lc.client == nil {
		return
	}
	if err := lc.client.Set(ctx, chave, dados, lc.ttl).Err(); err != nil {
		lc.logger.Debug("cache indisponível na escrita", zap.String("chave", chave), zap.Error(err))
	}
}

// InvalidarCacheProdutos derruba a lista cacheada de produtos; usado
// também por quem gera movimentações fora deste pacote.
func InvalidarCacheProdutos(ctx context.Context) {
	cache.Invalidar(ctx, chaveProdutos)
}

// Invalidar remove a chave após qualquer mutação da entidade.
func (lc *ListaCache) Invalidar(ctx context.Context, chave string) {
	if lc.client == nil {
		return
	}
	if err := lc.client.Del(ctx, chave).Err(); err != nil {
		lc.logger.Debug("cache indisponível na invalidação", zap.String("chave", chave), zap.Error(err))
	}
}
