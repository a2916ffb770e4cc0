package stream_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/repository"
	"github.com/jacentio/propman/schema"
	"github.com/jacentio/propman/stream"
)

type recorder struct {
	changes []stream.Change
	err     error
}

func (r *recorder) Publish(_ context.Context, c stream.Change) error {
	if r.err != nil {
		return r.err
	}
	r.changes = append(r.changes, c)
	return nil
}

func newHandler(t *testing.T, sink stream.Sink) (*stream.Handler, *bytes.Buffer) {
	t.Helper()
	d, err := repository.NewDecoder()
	require.NoError(t, err)
	var buf bytes.Buffer
	return stream.NewHandler(d, sink, zerolog.New(&buf)), &buf
}

func employeeImage(id, status string) map[string]events.DynamoDBAttributeValue {
	return map[string]events.DynamoDBAttributeValue{
		"pk":             events.NewStringAttribute("ORG#org-1"),
		"sk":             events.NewStringAttribute("EMPLOYEE#" + id),
		"gsi1pk":         events.NewStringAttribute("ORG#org-1#" + status),
		"gsi1sk":         events.NewStringAttribute("EMPLOYEE#" + id),
		"entityType":     events.NewStringAttribute("employee"),
		"organizationId": events.NewStringAttribute("org-1"),
		"employeeId":     events.NewStringAttribute(id),
		"firstName":      events.NewStringAttribute("Jane"),
		"lastName":       events.NewStringAttribute("Doe"),
		"email":          events.NewStringAttribute("jane@example.com"),
		"role":           events.NewStringAttribute("tech"),
		"status":         events.NewStringAttribute(status),
		"createdAt":      events.NewStringAttribute("2024-05-01T12:00:00.000Z"),
		"updatedAt":      events.NewNumberAttribute("1714564800"),
	}
}

func keys(id string) map[string]events.DynamoDBAttributeValue {
	return map[string]events.DynamoDBAttributeValue{
		"pk": events.NewStringAttribute("ORG#org-1"),
		"sk": events.NewStringAttribute("EMPLOYEE#" + id),
	}
}

func record(id, name string, newImage, oldImage map[string]events.DynamoDBAttributeValue) events.DynamoDBEventRecord {
	return events.DynamoDBEventRecord{
		EventID:   name + "-" + id,
		EventName: name,
		Change: events.DynamoDBStreamRecord{
			Keys:     keys(id),
			NewImage: newImage,
			OldImage: oldImage,
		},
	}
}

func TestHandle(t *testing.T) {
	sink := &recorder{}
	h, _ := newHandler(t, sink)

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "INSERT", employeeImage("e-1", "active"), nil),
		record("e-1", "MODIFY", employeeImage("e-1", "inactive"), employeeImage("e-1", "active")),
		record("e-1", "REMOVE", nil, employeeImage("e-1", "inactive")),
	}})
	require.NoError(t, err)
	require.Len(t, sink.changes, 3)

	insert := sink.changes[0]
	require.Equal(t, stream.OpInsert, insert.Op)
	require.Equal(t, schema.KindEmployee, insert.Kind)
	require.Equal(t, schema.Key{PK: "ORG#org-1", SK: "EMPLOYEE#e-1"}, insert.Key)
	require.Nil(t, insert.Old)
	e, ok := insert.New.(*entity.Employee)
	require.True(t, ok)
	require.Equal(t, entity.Status("active"), e.Status)
	require.Equal(t, entity.Timestamp("2024-05-01T12:00:00.000Z"), e.UpdatedAt)

	modify := sink.changes[1]
	require.Equal(t, stream.OpModify, modify.Op)
	require.Equal(t, entity.Status("inactive"), modify.New.(*entity.Employee).Status)
	require.Equal(t, entity.Status("active"), modify.Old.(*entity.Employee).Status)

	remove := sink.changes[2]
	require.Equal(t, stream.OpRemove, remove.Op)
	require.Equal(t, schema.KindEmployee, remove.Kind)
	require.Nil(t, remove.New)
	require.NotNil(t, remove.Old)
}

func TestHandle_UnknownKindSkipped(t *testing.T) {
	sink := &recorder{}
	h, logs := newHandler(t, sink)

	img := employeeImage("e-1", "active")
	img["entityType"] = events.NewStringAttribute("invoiceLine")

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "INSERT", img, nil),
		record("e-2", "INSERT", employeeImage("e-2", "active"), nil),
	}})
	require.NoError(t, err)
	require.Len(t, sink.changes, 1)
	require.Equal(t, "INSERT-e-2", sink.changes[0].EventID)
	require.Contains(t, logs.String(), "invoiceLine")
}

func TestHandle_InvalidImageFailsBatch(t *testing.T) {
	sink := &recorder{}
	h, _ := newHandler(t, sink)

	img := employeeImage("e-1", "active")
	img["status"] = events.NewStringAttribute("retired")

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-0", "INSERT", employeeImage("e-0", "active"), nil),
		record("e-1", "INSERT", img, nil),
		record("e-2", "INSERT", employeeImage("e-2", "active"), nil),
	}})
	require.ErrorIs(t, err, repository.ErrDataIntegrity)
	require.Len(t, sink.changes, 1)
}

func TestHandle_InvalidOldImage(t *testing.T) {
	sink := &recorder{}
	h, logs := newHandler(t, sink)

	corrupt := employeeImage("e-1", "active")
	delete(corrupt, "firstName")

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "MODIFY", employeeImage("e-1", "active"), corrupt),
		record("e-1", "REMOVE", nil, corrupt),
	}})
	require.NoError(t, err)
	require.Len(t, sink.changes, 2)

	repaired := sink.changes[0]
	require.Equal(t, stream.OpModify, repaired.Op)
	require.Equal(t, schema.KindEmployee, repaired.Kind)
	require.NotNil(t, repaired.New)
	require.Nil(t, repaired.Old)

	removed := sink.changes[1]
	require.Equal(t, stream.OpRemove, removed.Op)
	require.Equal(t, schema.KindEmployee, removed.Kind)
	require.Nil(t, removed.New)
	require.Nil(t, removed.Old)

	require.Contains(t, logs.String(), "old image failed validation")
	require.Contains(t, logs.String(), `"lastName":"Doe"`)
}

func TestHandle_SinkErrorFailsBatch(t *testing.T) {
	boom := errors.New("boom")
	h, _ := newHandler(t, &recorder{err: boom})

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "INSERT", employeeImage("e-1", "active"), nil),
	}})
	require.ErrorIs(t, err, boom)
}

func TestHandle_KeysOnly(t *testing.T) {
	sink := &recorder{}
	h, _ := newHandler(t, sink)

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "REMOVE", nil, nil),
	}})
	require.NoError(t, err)
	require.Empty(t, sink.changes)
}

func TestHandle_UnknownEventName(t *testing.T) {
	h, _ := newHandler(t, &recorder{})

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "TRUNCATE", employeeImage("e-1", "active"), nil),
	}})
	require.Error(t, err)
}

func TestHandle_Empty(t *testing.T) {
	h, _ := newHandler(t, &recorder{})
	require.NoError(t, h.Handle(context.Background(), events.DynamoDBEvent{}))
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newHandler(t, stream.NewLogSink(zerolog.New(&buf)))

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "INSERT", employeeImage("e-1", "active"), nil),
	}})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"kind":"employee"`)
	require.Contains(t, buf.String(), `"op":"INSERT"`)
	require.Contains(t, buf.String(), `"sk":"EMPLOYEE#e-1"`)
}

func TestSinkFunc(t *testing.T) {
	var got []stream.Op
	sink := stream.SinkFunc(func(_ context.Context, c stream.Change) error {
		got = append(got, c.Op)
		return nil
	})
	h, _ := newHandler(t, sink)

	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{
		record("e-1", "INSERT", employeeImage("e-1", "active"), nil),
		record("e-1", "REMOVE", nil, employeeImage("e-1", "active")),
	}})
	require.NoError(t, err)
	require.Equal(t, []stream.Op{stream.OpInsert, stream.OpRemove}, got)
}
