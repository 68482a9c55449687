package contact_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/build50/build50/internal/app/addons"
	"github.com/build50/build50/internal/app/contact"
	"github.com/build50/build50/internal/app/router"
	"github.com/build50/build50/internal/domain/catalog"
	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/ports"
)

type instantSubmitter struct {
	received []ports.Enquiry
}

func (s *instantSubmitter) Submit(_ context.Context, e ports.Enquiry) (ports.Receipt, error) {
	s.received = append(s.received, e)
	return ports.Receipt{EnquiryID: e.ID, DeliveredAt: time.Now()}, nil
}

func TestBrowseThenEnquireScenario(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	r, err := router.New(site.PageHome, nil)
	require.NoError(t, err)

	require.NoError(t, r.Navigate(site.PageServices))
	require.Equal(t, site.PageServices, r.Current())

	browser := addons.New(cat)
	_, err = browser.Select(catalog.CategorySEO)
	require.NoError(t, err)
	assert.Equal(t, cat.AddOns(catalog.CategorySEO), browser.VisibleItems())
	assert.Len(t, browser.VisibleItems(), 5)

	require.NoError(t, r.Navigate(site.PageContact))
	form := contact.New(catalog.DefaultPackageName, cat.PackageNames())
	form.SetField(contact.FieldName, "Sarah")
	form.SetField(contact.FieldEmail, "sarah@x.com")
	form.SetField(contact.FieldPackage, "Growth")
	form.SetField(contact.FieldMessage, "hi")

	var statuses []contact.Status
	statuses = append(statuses, form.Status())

	pending, err := form.Submit(context.Background())
	require.NoError(t, err)
	statuses = append(statuses, form.Status())

	submitter := &instantSubmitter{}
	receipt, runErr := pending.Run(submitter)
	require.NoError(t, runErr)
	assert.Equal(t, pending.ID, receipt.EnquiryID)

	require.True(t, form.Resolve(pending.ID, runErr))
	statuses = append(statuses, form.Status())

	assert.Equal(t, []contact.Status{contact.StatusIdle, contact.StatusSending, contact.StatusSuccess}, statuses)
	fields := form.Fields()
	assert.Empty(t, fields.Name)
	assert.Empty(t, fields.Email)
	assert.Empty(t, fields.Message)
	require.Len(t, submitter.received, 1)
	assert.Equal(t, "sarah@x.com", submitter.received[0].Email)
}
