package handlers

import (
	"log"
	"net/http"

	"finance-server/auth"
	"finance-server/repositories"
	"finance-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler attaches authenticated clients to the notification hub.
type WSHandler struct {
	mgr    *ws.Manager
	users  repositories.UserRepository
	tokens *auth.TokenIssuer
}

func NewWSHandler(mgr *ws.Manager, users repositories.UserRepository, tokens *auth.TokenIssuer) *WSHandler {
	return &WSHandler{mgr: mgr, users: users, tokens: tokens}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleNotificationWS upgrades to websocket and keeps the connection
// registered until the client goes away.
// GET /ws?token=<bearer token>
//
// Browsers cannot set headers on websocket dials, so the token rides in
// the query string here instead of an Authorization header.
func (h *WSHandler) HandleNotificationWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token", "code": "NO_TOKEN"})
		return
	}

	userID, err := h.tokens.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token", "code": "INVALID_TOKEN"})
		return
	}
	user, err := h.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found", "code": "USER_NOT_FOUND"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(user.ID, conn)
	log.Printf("notification stream connected: %s", user.ID)

	defer func() {
		h.mgr.Unregister(user.ID)
		log.Printf("notification stream disconnected: %s", user.ID)
	}()

	// The stream is push-only; just drain until the client hangs up
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s closed connection", user.ID)
			}
			return
		}
	}
}
