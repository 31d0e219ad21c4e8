package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const coachingTracerName = "github.com/mealping/mealping-coaching-core/internal/service/coach"

func CoachingTracer() trace.Tracer {
	return otel.Tracer(coachingTracerName)
}

func StartCoachingRunSpan(ctx context.Context, userID string, now time.Time) (context.Context, trace.Span) {
	return CoachingTracer().Start(ctx, "coaching.run",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("virtual_now", now.Format(time.RFC3339)),
		),
	)
}

func StartScheduleAnalysisSpan(ctx context.Context, intervalCount int) (context.Context, trace.Span) {
	return CoachingTracer().Start(ctx, "coaching.schedule_analysis",
		trace.WithAttributes(
			attribute.Int("busy_intervals", intervalCount),
		),
	)
}

func StartLedgerEvaluationSpan(ctx context.Context, day string) (context.Context, trace.Span) {
	return CoachingTracer().Start(ctx, "coaching.ledger_evaluation",
		trace.WithAttributes(
			attribute.String("day", day),
		),
	)
}

func StartReminderPlanningSpan(ctx context.Context, remaining float64) (context.Context, trace.Span) {
	return CoachingTracer().Start(ctx, "coaching.reminder_planning",
		trace.WithAttributes(
			attribute.Float64("remaining_amount", remaining),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return CoachingTracer().Start(ctx, "coaching.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
