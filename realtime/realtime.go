package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected admin dashboards
	broadcast = make(chan RegistrationUpdate)  // Broadcast channel for updates
	mutex     sync.Mutex                       // Protects the clients map
)

// Update types sent over the feed
const (
	UpdateRegistered = "registered"
	UpdateSubmitted  = "submitted"
	UpdateSelection  = "selection"
	UpdatePayment    = "payment"
)

// RegistrationUpdate is one event on the admin live feed
type RegistrationUpdate struct {
	UpdateType       string `json:"update_type"`
	RegistrationID   string `json:"registration_id"`
	TeamName         string `json:"team_name"`
	TeamCode         string `json:"team_code"`
	SubmissionStatus string `json:"submission_status,omitempty"`
	SelectionStatus  string `json:"selection_status,omitempty"`
	PaymentStatus    string `json:"payment_status,omitempty"`
}

// RegisterClient adds an admin dashboard connection to the feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a dashboard connection
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	mutex.Unlock()
}

// BroadcastUpdate sends an event to every connected dashboard
func BroadcastUpdate(update RegistrationUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
