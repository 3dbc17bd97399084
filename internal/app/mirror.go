// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/gps_clock/internal/config"
	"github.com/relabs-tech/gps_clock/internal/gps"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// sentenceBroadcaster fans raw NMEA sentences out to websocket clients.
// Each client gets a buffered channel; a client that cannot keep up loses
// sentences rather than stalling the rest.
type sentenceBroadcaster struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
}

func newSentenceBroadcaster() *sentenceBroadcaster {
	return &sentenceBroadcaster{clients: make(map[chan []byte]struct{})}
}

func (b *sentenceBroadcaster) publish(raw []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.clients {
		select {
		case ch <- raw:
		default:
		}
	}
}

func (b *sentenceBroadcaster) subscribe() chan []byte {
	ch := make(chan []byte, 64)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// unsubscribe removes and closes the client channel. Safe to call twice;
// publish holds the same lock, so no send can race the close.
func (b *sentenceBroadcaster) unsubscribe(ch chan []byte) {
	b.mu.Lock()
	if _, ok := b.clients[ch]; ok {
		delete(b.clients, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// RunMirror bridges the clock's MQTT topics to the local network: raw NMEA
// sentences stream over a websocket and the latest fix is served as JSON.
func RunMirror() error {
	cfg := config.Get()
	if cfg.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required for the NMEA mirror")
	}
	if cfg.MirrorListenAddr == "" {
		return fmt.Errorf("MIRROR_LISTEN_ADDR is required for the NMEA mirror")
	}

	var (
		mu      sync.RWMutex
		lastFix gps.Fix
		haveFix bool
	)
	broadcaster := newSentenceBroadcaster()

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDMirror)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("mirror: connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to the raw sentence stream
	token := client.Subscribe(cfg.TopicNMEARaw, 0, func(_ mqtt.Client, msg mqtt.Message) {
		raw := append([]byte(nil), msg.Payload()...)
		broadcaster.publish(raw)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("mirror: subscribed to MQTT topic %s", cfg.TopicNMEARaw)

	// 3) Subscribe to the fix topic and keep the latest
	token = client.Subscribe(cfg.TopicGPSFix, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var f gps.Fix
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("mirror: fix unmarshal error: %v", err)
			return
		}
		mu.Lock()
		lastFix = f
		haveFix = true
		mu.Unlock()
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("mirror: subscribed to MQTT topic %s", cfg.TopicGPSFix)

	// 4) JSON API endpoint: latest fix
	http.HandleFunc("/api/fix", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		if !haveFix {
			http.Error(w, "no fix yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lastFix); err != nil {
			log.Printf("mirror: json encode error: %v", err)
		}
	})

	// 5) Websocket NMEA stream, one text message per sentence
	http.HandleFunc("/nmea", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("mirror: websocket upgrade error: %v", err)
			return
		}
		defer conn.Close()

		ch := broadcaster.subscribe()
		defer broadcaster.unsubscribe(ch)
		log.Printf("mirror: websocket client connected from %s", r.RemoteAddr)

		// Drain reads so close frames are processed.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					broadcaster.unsubscribe(ch)
					return
				}
			}
		}()

		for raw := range ch {
			if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
		}
	})

	log.Printf("mirror: listening on %s", cfg.MirrorListenAddr)
	return http.ListenAndServe(cfg.MirrorListenAddr, nil)
}
