package db

import (
	"context"
	"crypto/tls"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salone/credentials"
)

// DB bundles the collection handles the admin tools operate on. The entry
// point creates it once and threads it into every component; nothing else
// reaches for the client.
type DB struct {
	Client     *mongo.Client
	Admins     *mongo.Collection // keyed by uid field
	AdminUsers *mongo.Collection // keyed by username field
	Services   *mongo.Collection // unique by name, by convention only
	Settings   *mongo.Collection // holds the fixed-key config singleton
	AuthUsers  *mongo.Collection // identity-service account records
}

var conn *DB

// Connect authenticates against the cluster with the service identity and
// returns the shared handle. Repeated calls reuse the first connection without
// re-authenticating; the handle lives until process exit, no teardown needed.
func Connect(ctx context.Context, id *credentials.ServiceIdentity) (*DB, error) {
	if conn != nil {
		return conn, nil
	}

	// The identity PEM carries both the client certificate and its key.
	cert, err := tls.X509KeyPair([]byte(id.PrivateKey), []byte(id.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("load client certificate: %w", err)
	}

	uri := fmt.Sprintf("mongodb+srv://%s.mongodb.net/?retryWrites=true&w=majority", id.ProjectID)
	opts := options.Client().
		ApplyURI(uri).
		SetTLSConfig(&tls.Config{Certificates: []tls.Certificate{cert}}).
		SetAuth(options.Credential{
			AuthMechanism: "MONGODB-X509",
			AuthSource:    "$external",
			Username:      id.ClientEmail,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", id.ProjectID, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("authenticate against %s: %w", id.ProjectID, err)
	}

	database := client.Database(id.ProjectID)
	conn = &DB{
		Client:     client,
		Admins:     database.Collection("admins"),
		AdminUsers: database.Collection("adminUsers"),
		Services:   database.Collection("services"),
		Settings:   database.Collection("settings"),
		AuthUsers:  database.Collection("authUsers"),
	}
	return conn, nil
}
