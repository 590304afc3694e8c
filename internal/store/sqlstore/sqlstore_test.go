package sqlstore

import (
	"testing"

	"github.com/codr1/designtokens/internal/store"
	"github.com/codr1/designtokens/internal/store/storetest"
	"github.com/codr1/designtokens/internal/testutil"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return New(testutil.NewTestDB(t))
	})
}
