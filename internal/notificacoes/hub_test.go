package notificacoes

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBroadcastEntregaEvento(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	aguardarConexoes(t, hub, 1)

	hub.Broadcast(Evento{Tipo: "criada", NotificacaoID: 7, Status: "pendente", ProdutoNome: "Caneta", Quantidade: 3})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var ev Evento
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, "criada", ev.Tipo)
	require.Equal(t, uint(7), ev.NotificacaoID)
	require.Equal(t, "Caneta", ev.ProdutoNome)
}

func TestBroadcastConcorrenteNaMesmaConexao(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	aguardarConexoes(t, hub, 1)

	const eventos = 64
	var wg sync.WaitGroup
	for i := 0; i < eventos; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			hub.Broadcast(Evento{Tipo: "decidida", NotificacaoID: id})
		}(uint(i))
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < eventos; i++ {
		var ev Evento
		require.NoError(t, conn.ReadJSON(&ev))
		require.Equal(t, "decidida", ev.Tipo)
	}
	wg.Wait()
}

func TestBroadcastRemoveConexaoFechada(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	aguardarConexoes(t, hub, 1)
	require.NoError(t, conn.Close())
	aguardarConexoes(t, hub, 0)

	// Não há mais ninguém; não pode travar nem entrar em pânico
	hub.Broadcast(Evento{Tipo: "criada", NotificacaoID: 1})
}

func aguardarConexoes(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.conns) == n
	}, 5*time.Second, 10*time.Millisecond)
}
