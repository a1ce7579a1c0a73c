package seed

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"testing"

	"lowkey/config"
	"lowkey/internal/infra/persistence/memory"

	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const header = "product,seller_id,regular_price,sale_price,latitude,longitude,open_start,open_end,open_days,ratings\n"

func newBucket(t *testing.T, objects map[string][]byte) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	for key, data := range objects {
		require.NoError(t, bucket.WriteAll(context.Background(), key, data, nil))
	}

	return bucket
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func newTestLoader(concurrency int) (*Loader, *memory.Catalog) {
	catalog := memory.NewCatalog()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLoader(catalog, &config.CatalogConfig{SeedConcurrency: concurrency}, logger), catalog
}

func TestLoader_LoadsPlainAndGzipObjects(t *testing.T) {
	t.Parallel()

	bucket := newBucket(t, map[string][]byte{
		"offers/a.csv": []byte(header +
			"Refrigerator,s1,25000,23000,12.97,77.59,9,21,Mon;Tue;Wed,4;5\n" +
			"Washing Machine,s2,18000,,12.90,77.60,10,20,daily,\n"),
		"offers/b.csv.gz": gzipped(t, header+
			"refrigerator,s3,24000,,12.95,77.58,0,24,all,3\n"),
		"offers/readme.txt": []byte("ignored"),
	})

	loader, catalog := newTestLoader(2)
	stats, err := loader.Load(context.Background(), bucket, "offers/")
	require.NoError(t, err)

	assert.Equal(t, Stats{Objects: 2, Rows: 3, Offers: 3}, stats)
	assert.Equal(t, 3, catalog.Len())

	offers, err := catalog.FindOffersByProduct(context.Background(), "REFRIGERATOR")
	require.NoError(t, err)
	require.Len(t, offers, 2)

	bySeller := map[string]bool{}
	for _, o := range offers {
		bySeller[o.SellerID] = true
		if o.SellerID == "s1" {
			assert.True(t, o.SalePrice.Valid)
			assert.True(t, decimal.NewFromInt(23000).Equal(o.SalePrice.Decimal))
			assert.Equal(t, []int{4, 5}, o.Ratings)
			assert.Equal(t, "Mon,Tue,Wed", o.OpenDays.String())
		}
	}
	assert.True(t, bySeller["s1"])
	assert.True(t, bySeller["s3"])
}

func TestLoader_LastRowWins(t *testing.T) {
	t.Parallel()

	bucket := newBucket(t, map[string][]byte{
		"1.csv": []byte(header +
			"Kettle,s1,1000,,12.97,77.59,9,21,daily,\n" +
			"kettle,s1,900,,12.97,77.59,9,21,daily,\n"),
		"2.csv": []byte(header +
			"KETTLE,s1,800,,12.97,77.59,9,21,daily,5\n"),
	})

	loader, catalog := newTestLoader(1)
	stats, err := loader.Load(context.Background(), bucket, "")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 1, stats.Offers)

	offer, err := catalog.FindOffer(context.Background(), "kettle", "s1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(800).Equal(offer.RegularPrice))
	assert.Equal(t, []int{5}, offer.Ratings)
}

func TestLoader_RejectsMalformedRows(t *testing.T) {
	t.Parallel()

	bucket := newBucket(t, map[string][]byte{
		"offers.csv": []byte(header +
			"Kettle,s1,1000,,12.97,77.59,9,21,daily,\n" +
			"Kettle,s2,abc,,12.97,77.59,9,21,daily,\n" +
			"Kettle,s3,1000,,95,77.59,9,21,daily,\n" +
			"Kettle,s4,1000,,12.97,77.59,21,9,daily,\n" +
			"Kettle,s5,1000,,12.97,77.59,9,21,someday,\n" +
			"Kettle,s6,1000,,12.97,77.59,9,21,daily,7\n" +
			"Kettle,s7,1000\n" +
			"# comment line\n" +
			"Kettle,s8,1000,,12.97,77.59,9,21,daily,1;2\n"),
	})

	loader, catalog := newTestLoader(0)
	stats, err := loader.Load(context.Background(), bucket, "")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 6, stats.Rejected)
	assert.Equal(t, 2, catalog.Len())
}

func TestLoader_BadHeaderFailsLoad(t *testing.T) {
	t.Parallel()

	bucket := newBucket(t, map[string][]byte{
		"good.csv": []byte(header + "Kettle,s1,1000,,12.97,77.59,9,21,daily,\n"),
		"bad.csv":  []byte("product,seller,price\nKettle,s1,1000\n"),
	})

	loader, catalog := newTestLoader(2)
	_, err := loader.Load(context.Background(), bucket, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.csv")
	assert.Equal(t, 0, catalog.Len())
}

func TestLoader_PrefixFilters(t *testing.T) {
	t.Parallel()

	bucket := newBucket(t, map[string][]byte{
		"2026/offers.csv": []byte(header + "Kettle,s1,1000,,12.97,77.59,9,21,daily,\n"),
		"old/offers.csv":  []byte("not,a,seed\n"),
	})

	loader, catalog := newTestLoader(2)
	stats, err := loader.Load(context.Background(), bucket, "2026/")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Objects)
	assert.Equal(t, 1, catalog.Len())
}

func TestLoader_LoadURL(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader(1)

	stats, err := loader.LoadURL(context.Background(), "mem://", "")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	_, err = loader.LoadURL(context.Background(), "nope://bucket", "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "open seed bucket"))
}

func TestNewLoader_DefaultConcurrency(t *testing.T) {
	t.Parallel()

	loader := NewLoader(memory.NewCatalog(), nil, slog.Default())
	assert.Equal(t, defaultConcurrency, loader.concurrency)
}

func TestParseRow_NamesFailingColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		row    string
		column string
	}{
		{name: "regular price", row: "Kettle,s1,abc,,12.97,77.59,9,21,daily,", column: "regular_price"},
		{name: "sale price", row: "Kettle,s1,100,x,12.97,77.59,9,21,daily,", column: "sale_price"},
		{name: "latitude", row: "Kettle,s1,100,,north,77.59,9,21,daily,", column: "latitude"},
		{name: "longitude", row: "Kettle,s1,100,,12.97,east,9,21,daily,", column: "longitude"},
		{name: "open start", row: "Kettle,s1,100,,12.97,77.59,nine,21,daily,", column: "open_start"},
		{name: "open end", row: "Kettle,s1,100,,12.97,77.59,9,late,daily,", column: "open_end"},
		{name: "ratings", row: "Kettle,s1,100,,12.97,77.59,9,21,daily,4;five", column: "ratings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offer, err := parseRow(strings.Split(tt.row, ","))
			require.Error(t, err)
			assert.Nil(t, offer)
			assert.True(t, strings.HasPrefix(err.Error(), tt.column+": "), err.Error())
		})
	}
}

func TestParseRow_KeepsStrconvCause(t *testing.T) {
	t.Parallel()

	_, err := parseRow(strings.Split("Kettle,s1,100,,12.97,77.59,9,21,daily,x", ","))
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestLoader_OptionalDescriptionColumn(t *testing.T) {
	t.Parallel()

	withDescription := strings.TrimSuffix(header, "\n") + ",description\n"
	bucket := newBucket(t, map[string][]byte{
		"described.csv": []byte(withDescription +
			"Kettle,s1,1000,,12.97,77.59,9,21,daily,,\"1.5L, steel body\"\n" +
			"Kettle,s2,1000,,12.97,77.59,9,21,daily,\n"),
		"plain.csv": []byte(header + "Toaster,s1,1500,,12.97,77.59,9,21,daily,\n"),
	})

	loader, catalog := newTestLoader(2)
	stats, err := loader.Load(context.Background(), bucket, "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 1, stats.Rejected)

	kettle, err := catalog.FindOffer(context.Background(), "kettle", "s1")
	require.NoError(t, err)
	assert.Equal(t, "1.5L, steel body", kettle.Description)

	toaster, err := catalog.FindOffer(context.Background(), "toaster", "s1")
	require.NoError(t, err)
	assert.Empty(t, toaster.Description)
}

func TestCheckHeader(t *testing.T) {
	t.Parallel()

	base := strings.Split(strings.TrimSuffix(header, "\n"), ",")

	tests := []struct {
		name    string
		header  []string
		wantErr bool
	}{
		{name: "required columns", header: base},
		{name: "with description", header: append(slices.Clone(base), "Description")},
		{name: "unknown trailing column", header: append(slices.Clone(base), "notes"), wantErr: true},
		{name: "too few", header: base[:9], wantErr: true},
		{name: "too many", header: append(slices.Clone(base), "description", "notes"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
		})
	}
}
