// Package db owns the shared MongoDB client. The connection is established
// lazily on first use and reused for the process lifetime.
package db

import (
	"context"
	"sync"

	"github.com/fossclubsrm/forms-backend/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Manager provides a single shared connection to the document store. The
// lazy initialization is mutex-guarded so concurrent first use cannot
// establish duplicate connections. Close resets the cached handle, so the
// next call transparently reconnects.
type Manager struct {
	mu     sync.Mutex
	uri    string
	dbName string
	client *mongo.Client
}

// NewManager creates a Manager for the given connection string and database
// name. No connection is attempted until Database is first called.
func NewManager(uri, dbName string) *Manager {
	return &Manager{uri: uri, dbName: dbName}
}

// Database returns a handle to the configured database, connecting on first
// use. Subsequent calls reuse the established client.
func (m *Manager) Database(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client.Database(m.dbName), nil
	}

	log := logger.GetLogger()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		log.Errorw("Failed to connect to MongoDB",
			"uri", logger.MaskConnectionString(m.uri), "error", err)
		return nil, err
	}

	// Connect only validates the URI; ping so a dead server surfaces here
	// rather than on the first insert.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		log.Errorw("Failed to reach MongoDB",
			"uri", logger.MaskConnectionString(m.uri), "error", err)
		return nil, err
	}

	log.Infow("Connected to MongoDB", "database", m.dbName)
	m.client = client
	return m.client.Database(m.dbName), nil
}

// Close disconnects the shared client and clears the cached handle. Calling
// Database afterwards reconnects lazily. Close on an unconnected Manager is
// a no-op.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	if err != nil {
		return err
	}
	logger.GetLogger().Infow("Disconnected from MongoDB")
	return nil
}

// Connected reports whether a client is currently cached.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client != nil
}
