package database

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type recordingTracer struct {
	started, ended int
}

func (r *recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	r.started++
	return ctx
}

func (r *recordingTracer) TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData) {
	r.ended++
}

func TestMultiTracerCallsEveryTracer(t *testing.T) {
	a, b := &recordingTracer{}, &recordingTracer{}
	mt := &multiTracer{tracers: []pgx.QueryTracer{a, b}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	if a.started != 1 || a.ended != 1 || b.started != 1 || b.ended != 1 {
		t.Fatalf("unexpected calls: a=%+v b=%+v", a, b)
	}
}

func TestSlowQueryTracerWarnsAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	tracer := &slowQueryTracer{threshold: time.Nanosecond, log: &log}
	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT * FROM products"})
	time.Sleep(time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	if !strings.Contains(buf.String(), "slow query") || !strings.Contains(buf.String(), "SELECT * FROM products") {
		t.Fatalf("expected slow query log, got %q", buf.String())
	}
}

func TestSlowQueryTracerQuietBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	tracer := &slowQueryTracer{threshold: time.Hour, log: &log}
	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
