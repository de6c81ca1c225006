package notificacoes

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub distribui eventos de solicitações para os painéis conectados.
// Um evento por criação e um por decisão; quem perde a conexão
// simplesmente recarrega a lista.
type Hub struct {
	mu sync.Mutex
	// gorilla/websocket admite no máximo um escritor por conexão; cada
	// conexão carrega o próprio lock de escrita para serializar broadcasts
	// disparados por requisições concorrentes.
	conns   map[*websocket.Conn]*sync.Mutex
	upgrade websocket.Upgrader
	logger  *zap.Logger
}

type Evento struct {
	Tipo          string  `json:"tipo"` // "criada" | "decidida"
	NotificacaoID uint    `json:"notificacao_id"`
	Status        string  `json:"status"`
	ProdutoNome   string  `json:"produto_nome"`
	Quantidade    float64 `json:"quantidade"`
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		conns: make(map[*websocket.Conn]*sync.Mutex),
		upgrade: websocket.Upgrader{
			// O painel roda em outra origem; o controle fica no CORS da API
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrade.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("upgrade de websocket falhou", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = &sync.Mutex{}
	h.mu.Unlock()

	// Só broadcast servidor->cliente; o loop de leitura existe para
	// detectar o fechamento.
	go func() {
		defer h.remover(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) remover(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// Broadcast envia o evento para todos os conectados; conexão com erro sai
// do conjunto.
func (h *Hub) Broadcast(ev Evento) {
	dados, err := json.Marshal(ev)
	if err != nil {
		return
	}

	type alvo struct {
		conn    *websocket.Conn
		escrita *sync.Mutex
	}

	h.mu.Lock()
	alvos := make([]alvo, 0, len(h.conns))
	for c, m := range h.conns {
		alvos = append(alvos, alvo{conn: c, escrita: m})
	}
	h.mu.Unlock()

	for _, a := range alvos {
		a.escrita.Lock()
		err := a.conn.WriteMessage(websocket.TextMessage, dados)
		a.escrita.Unlock()
		if err != nil {
			h.remover(a.conn)
		}
	}
}
