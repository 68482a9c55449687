package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteerrors "github.com/build50/build50/pkg/errors"
)

var tiers = []string{"Starter", "Growth", "Pro", "Elite"}

func filled(t *testing.T) *Controller {
	t.Helper()
	c := New("Growth", tiers)
	require.True(t, c.SetField(FieldName, "Sarah"))
	require.True(t, c.SetField(FieldEmail, "sarah@x.com"))
	require.True(t, c.SetField(FieldMessage, "hi"))
	return c
}

func TestNewControllerIsIdleWithDefaultPackage(t *testing.T) {
	t.Parallel()

	c := New("Growth", tiers)
	assert.Equal(t, StatusIdle, c.Status())
	assert.Equal(t, Fields{Package: "Growth"}, c.Fields())
	assert.Nil(t, c.Pending())
}

func TestSubmitRejectsInvalidFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  map[Field]string
		field   string
		message string
	}{
		{"empty name", map[Field]string{FieldEmail: "a@b.co"}, "name", "is required"},
		{"blank name", map[Field]string{FieldName: "   ", FieldEmail: "a@b.co"}, "name", "is required"},
		{"empty email", map[Field]string{FieldName: "Sarah"}, "email", "is required"},
		{"malformed email", map[Field]string{FieldName: "Sarah", FieldEmail: "sarah-at-x"}, "email", "must be a valid email address"},
		{"unknown package", map[Field]string{FieldName: "Sarah", FieldEmail: "a@b.co", FieldPackage: "Platinum"}, "package", "must be one of [Starter Growth Pro Elite]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New("Growth", tiers)
			for f, v := range tt.fields {
				c.SetField(f, v)
			}

			pending, err := c.Submit(context.Background())
			require.Error(t, err)
			assert.Nil(t, pending)
			assert.Equal(t, StatusIdle, c.Status())

			var fe siteerrors.FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.message, fe.For(tt.field))
			assert.Equal(t, tt.message, c.Errors().For(tt.field))
		})
	}
}

func TestEditingFieldClearsItsError(t *testing.T) {
	t.Parallel()

	c := New("Growth", tiers)
	_, err := c.Submit(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, c.Errors().For("name"))
	require.NotEmpty(t, c.Errors().For("email"))

	c.SetField(FieldName, "Sarah")
	assert.Empty(t, c.Errors().For("name"))
	assert.NotEmpty(t, c.Errors().For("email"))
}

func TestSubmitMovesToSendingAndGuardsReentry(t *testing.T) {
	t.Parallel()

	c := filled(t)
	pending, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, StatusSending, c.Status())
	assert.Equal(t, pending.ID, pending.Enquiry.ID)
	assert.Equal(t, "Sarah", pending.Enquiry.Name)
	assert.Equal(t, "Growth", pending.Enquiry.Package)
	assert.False(t, pending.Enquiry.SubmittedAt.IsZero())

	again, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Nil(t, again)
	assert.Same(t, pending, c.Pending())

	assert.False(t, c.SetField(FieldName, "Changed"))
	assert.Equal(t, "Sarah", c.Fields().Name)
}

func TestResolveSuccessClearsFieldsAndResetReturnsToIdle(t *testing.T) {
	t.Parallel()

	c := filled(t)
	pending, err := c.Submit(context.Background())
	require.NoError(t, err)

	require.True(t, c.Resolve(pending.ID, nil))
	assert.Equal(t, StatusSuccess, c.Status())
	assert.Equal(t, Fields{Package: "Growth"}, c.Fields())
	assert.Error(t, pending.Context().Err(), "task context released")

	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotIdle)

	require.True(t, c.Reset())
	assert.Equal(t, StatusIdle, c.Status())
	assert.Equal(t, Fields{Package: "Growth"}, c.Fields())
	assert.False(t, c.Reset())
}

func TestResolveFailureKeepsFieldsAndRetryReturnsToIdle(t *testing.T) {
	t.Parallel()

	c := filled(t)
	pending, err := c.Submit(context.Background())
	require.NoError(t, err)

	deliveryErr := siteerrors.NewSubmissionError(pending.ID, errors.New("gateway timeout"))
	require.True(t, c.Resolve(pending.ID, deliveryErr))
	assert.Equal(t, StatusFailed, c.Status())
	assert.ErrorIs(t, c.Failure(), deliveryErr)
	assert.Equal(t, "Sarah", c.Fields().Name)
	assert.False(t, c.Reset(), "reset only applies to success")

	require.True(t, c.Retry())
	assert.Equal(t, StatusIdle, c.Status())
	assert.Nil(t, c.Failure())
	assert.Equal(t, "sarah@x.com", c.Fields().Email)

	_, err = c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusSending, c.Status())
}

func TestResolveIgnoresStaleIDs(t *testing.T) {
	t.Parallel()

	c := filled(t)
	pending, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.False(t, c.Resolve("some-other-id", nil))
	assert.Equal(t, StatusSending, c.Status())

	require.True(t, c.Resolve(pending.ID, nil))
	assert.False(t, c.Resolve(pending.ID, nil), "already resolved")
}

func TestDiscardCancelsPending(t *testing.T) {
	t.Parallel()

	c := filled(t)
	pending, err := c.Submit(context.Background())
	require.NoError(t, err)

	c.Discard()
	assert.ErrorIs(t, pending.Context().Err(), context.Canceled)
	assert.Nil(t, c.Pending())
	assert.False(t, c.Resolve(pending.ID, nil))
}

func TestSetFieldRejectsUnknownField(t *testing.T) {
	t.Parallel()

	c := New("Growth", nil)
	assert.False(t, c.SetField(Field("phone"), "0400"))
}
