package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/snake-arena/internal/seed"
)

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_STORAGE", "APP_CORS_ORIGINS",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS",
	"KAFKA_BROKERS", "KAFKA_TOPIC", "GRPC_PORT", "JWT_SECRET_KEY", "JWT_EXP_SECOND",
}

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv unsets the config variables for the duration of the test
func resetEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		if val, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, val) })
		}
		os.Unsetenv(key)
	}
	// runs before the restores above
	t.Cleanup(func() {
		for _, key := range configKeys {
			os.Unsetenv(key)
		}
	})
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return strconv.Itoa(lis.Addr().(*net.TCPAddr).Port)
}

func testConfig(t *testing.T) *config {
	return &config{
		AppHost:      "127.0.0.1",
		AppPort:      freePort(t),
		LogLevel:     "error",
		Storage:      storageMemory,
		CORSOrigins:  []string{"http://localhost:3000"},
		GRPCPort:     freePort(t),
		JWTSecretKey: "testsecret",
		JWTExp:       time.Minute,
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	oldVersion, oldCommit, oldDate := buildVersion, buildCommit, buildDate
	defer func() { buildVersion, buildCommit, buildDate = oldVersion, oldCommit, oldDate }()
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	// Application
	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, storageMemory, cfg.Storage)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8080"}, cfg.CORSOrigins)

	// PostgreSQL
	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "database", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	// Redis
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.RedisPassword)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)

	// Kafka
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "leaderboard.scores", cfg.KafkaTopic)

	// gRPC
	assert.Equal(t, "50051", cfg.GRPCPort)

	// JWT
	assert.Equal(t, "my_super_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 24*time.Hour, cfg.JWTExp)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_STORAGE", "postgres")
	os.Setenv("APP_CORS_ORIGINS", "https://snake.example.com, http://localhost:3000")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	os.Setenv("KAFKA_TOPIC", "scores")
	os.Setenv("GRPC_PORT", "50052")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, &config{
		AppHost:           "127.0.0.1",
		AppPort:           "9090",
		LogLevel:          "debug",
		Storage:           storagePostgres,
		CORSOrigins:       []string{"https://snake.example.com", "http://localhost:3000"},
		PGHost:            "pg.example.com",
		PGPort:            5433,
		PGUser:            "admin",
		PGPassword:        "secret",
		PGDB:              "mydb",
		PGMaxOpenConns:    20,
		PGMaxIdleConns:    10,
		RedisHost:         "redis.example.com",
		RedisPort:         6380,
		RedisDB:           2,
		RedisPassword:     "redispass",
		RedisPoolSize:     15,
		RedisMinIdleConns: 5,
		KafkaBrokers:      []string{"kafka-1:9092", "kafka-2:9092"},
		KafkaTopic:        "scores",
		GRPCPort:          "50052",
		JWTSecretKey:      "supersecret",
		JWTExp:            300 * time.Second,
	}, cfg)
}

func TestParseConfig_EnvFile(t *testing.T) {
	resetEnv(t)

	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nJWT_EXP_SECOND=60\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, time.Minute, cfg.JWTExp)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "postgres port", key: "POSTGRES_PORT", val: "abc"},
		{name: "redis db", key: "REDIS_DB", val: "zero"},
		{name: "jwt expiration", key: "JWT_EXP_SECOND", val: "1h"},
		{name: "storage", key: "APP_STORAGE", val: "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			os.Setenv(tt.key, tt.val)

			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "loud"

	assert.Error(t, run(context.Background(), cfg))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, testConfig(t)))
}

func TestRun_Memory(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	baseURL := "http://" + net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	waitHealthy(t, baseURL)

	// seeded leaderboard
	resp, err := http.Get(baseURL + "/api/v1/leaderboard?mode=walls")
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	resp.Body.Close()
	assert.Len(t, entries, 3)

	// gRPC health
	conn, err := grpc.NewClient(net.JoinHostPort(cfg.AppHost, cfg.GRPCPort), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	check, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: "snake-arena"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check.Status)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestRun_PortInUse(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := testConfig(t)
	cfg.AppPort = strconv.Itoa(lis.Addr().(*net.TCPAddr).Port)

	errCh := make(chan error, 1)
	go func() { errCh <- run(context.Background(), cfg) }()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP server failed")
	case <-time.After(15 * time.Second):
		t.Fatal("run did not fail")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	// ------------------ Redis ------------------
	mini := miniredis.RunT(t)
	redisPort, err := strconv.Atoi(mini.Port())
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Storage = storagePostgres
	cfg.PGHost, cfg.PGPort = pgHost, pgPort.Int()
	cfg.PGUser, cfg.PGPassword, cfg.PGDB = "user", "password", "testdb"
	cfg.PGMaxOpenConns, cfg.PGMaxIdleConns = 5, 2
	cfg.RedisHost, cfg.RedisPort = mini.Host(), redisPort
	cfg.RedisPoolSize, cfg.RedisMinIdleConns = 10, 2

	// ------------------ Run ------------------
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(runCtx, cfg) }()

	baseURL := "http://" + net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	waitHealthy(t, baseURL)

	body := fmt.Sprintf(`{"email": "player1@test.com", "password": %q}`, seed.Password)
	resp, err := http.Post(baseURL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/leaderboard/submit", strings.NewReader(`{"score": 1500, "mode": "walls"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	var submit struct {
		Success bool `json:"success"`
		Rank    int  `json:"rank"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&submit))
	resp.Body.Close()
	assert.True(t, submit.Success)
	assert.Equal(t, 4, submit.Rank)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}

func waitHealthy(t *testing.T, baseURL string) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond)
}
