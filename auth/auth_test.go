package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"salone/credentials"
)

type fakeUsers struct {
	docs []bson.M
}

func toM(document interface{}) bson.M {
	raw, err := bson.Marshal(document)
	if err != nil {
		panic(err)
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		panic(err)
	}
	return d
}

func (f *fakeUsers) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	q := toM(filter)
	for _, d := range f.docs {
		if d["email"] == q["email"] {
			return mongo.NewSingleResultFromDocument(d, nil, nil)
		}
	}
	return mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, nil)
}

func (f *fakeUsers) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.docs = append(f.docs, toM(document))
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeUsers) UpdateOne(_ context.Context, _, _ interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

var ctx = context.Background()

func TestValidatePasswordBoundary(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"), "5 characters is too short")
	assert.NoError(t, ValidatePassword("123456"), "6 characters is the minimum")
}

func TestCreateUser(t *testing.T) {
	users := &fakeUsers{}

	user, err := CreateUser(ctx, users, " Bob@Salone.LOCAL ", "secret1", "Bob")
	require.NoError(t, err)

	assert.NotEmpty(t, user.UID)
	assert.Equal(t, "bob@salone.local", user.Email, "email is normalized")
	assert.Equal(t, "Bob", user.DisplayName)
	assert.True(t, user.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	assert.NotEqual(t, "secret1", user.PasswordHash)
	require.Len(t, users.docs, 1)
}

func TestCreateUserRejectsTakenEmail(t *testing.T) {
	users := &fakeUsers{}

	first, err := CreateUser(ctx, users, "bob@salone.local", "secret1", "")
	require.NoError(t, err)

	_, err = CreateUser(ctx, users, "bob@salone.local", "another1", "")
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Len(t, users.docs, 1)

	got, err := GetUserByEmail(ctx, users, "bob@salone.local")
	require.NoError(t, err)
	assert.Equal(t, first.UID, got.UID, "uid is stable once issued")
}

func TestCreateUserValidation(t *testing.T) {
	users := &fakeUsers{}

	_, err := CreateUser(ctx, users, "", "secret1", "")
	assert.Error(t, err)

	_, err = CreateUser(ctx, users, "bob@salone.local", "short", "")
	assert.Error(t, err)
	assert.Empty(t, users.docs)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	_, err := GetUserByEmail(ctx, &fakeUsers{}, "ghost@salone.local")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCustomToken(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cert := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("cert-bytes")})
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(rsaKey),
	})

	id := &credentials.ServiceIdentity{
		ProjectID:   "salone-prod",
		ClientEmail: "tools@salone.app",
		PrivateKey:  string(cert) + string(keyPEM),
	}

	signed, err := CustomToken(id, "uid-123")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return &rsaKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "uid-123", claims["sub"])
	assert.Equal(t, "tools@salone.app", claims["iss"])
	assert.Equal(t, "salone-prod", claims["aud"])
}

func TestCustomTokenNeedsAKey(t *testing.T) {
	id := &credentials.ServiceIdentity{
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("x")})),
	}
	_, err := CustomToken(id, "uid-123")
	assert.Error(t, err)
}
