package database

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/FarzanehSa/LightBnB/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type recordingTracer struct {
	name  string
	calls *[]string
}

type recordingKey struct{}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, "start:"+r.name)
	return context.WithValue(ctx, recordingKey{}, r.name)
}

func (r recordingTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, "end:"+r.name+":"+ctx.Value(recordingKey{}).(string))
}

func TestMultiTracer_ThreadsContext(t *testing.T) {
	var calls []string
	mt := &multiTracer{tracers: []queryTracer{
		recordingTracer{name: "a", calls: &calls},
		recordingTracer{name: "b", calls: &calls},
	}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	want := []string{"start:a", "start:b", "end:a:b", "end:b:b"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, calls)
	}
}

func TestSlowQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tracer := &slowQueryTracer{
		threshold: 100 * time.Millisecond,
		log:       &log,
		now:       func() time.Time { return now },
	}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT * FROM properties"})

	now = now.Add(50 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})
	if buf.Len() != 0 {
		t.Fatalf("fast query should not be logged, got %q", buf.String())
	}

	now = now.Add(200 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})
	if !strings.Contains(buf.String(), "slow query") || !strings.Contains(buf.String(), "FROM properties") {
		t.Errorf("expected slow query warning, got %q", buf.String())
	}
}

func TestApplyPoolSettings(t *testing.T) {
	pc, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/lightbnb?sslmode=disable")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	applyPoolSettings(pc, config.DatabaseConfig{
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 300,
		ConnMaxIdleTime: 60,
	})

	if pc.MaxConns != 20 || pc.MinConns != 5 {
		t.Errorf("unexpected pool sizes max=%d min=%d", pc.MaxConns, pc.MinConns)
	}
	if pc.MaxConnLifetime != 5*time.Minute || pc.MaxConnIdleTime != time.Minute {
		t.Errorf("unexpected lifetimes %s / %s", pc.MaxConnLifetime, pc.MaxConnIdleTime)
	}
}

func TestBuildTracer(t *testing.T) {
	log := zerolog.Nop()
	cfg := &config.Config{Primary: config.Primary{Env: "production"}}

	if tr := buildTracer(cfg, &log, nil); tr != nil {
		t.Errorf("expected no tracer, got %T", tr)
	}

	cfg.Observability = config.DefaultObservabilityConfig()
	if _, ok := buildTracer(cfg, &log, nil).(*slowQueryTracer); !ok {
		t.Error("expected slow query tracer alone")
	}

	cfg.Primary.Env = "local"
	if _, ok := buildTracer(cfg, &log, nil).(*multiTracer); !ok {
		t.Error("expected chained tracers in local env")
	}
}

func TestMigrationFS(t *testing.T) {
	fsys, err := MigrationFS()
	if err != nil {
		t.Fatalf("MigrationFS: %v", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) < 2 {
		t.Fatalf("expected embedded migrations, got %v", files)
	}

	schema, err := fs.ReadFile(fsys, "001_create_schema.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	for _, table := range []string{"users", "properties", "reservations", "property_reviews"} {
		if !strings.Contains(string(schema), "CREATE TABLE "+table+" (") {
			t.Errorf("schema does not create %s", table)
		}
	}
}
