// Package seed loads offer catalogs from CSV objects in a blob bucket.
package seed

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"lowkey/config"
	"lowkey/internal/domain/entity"
	"lowkey/internal/domain/repository"
	"lowkey/internal/errors"

	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// Columns is the required header of every seed object, in order.
var Columns = []string{
	"product", "seller_id", "regular_price", "sale_price",
	"latitude", "longitude", "open_start", "open_end", "open_days", "ratings",
}

// DescriptionColumn may follow Columns as an optional last header column.
const DescriptionColumn = "description"

// Stats summarizes one load.
type Stats struct {
	Objects  int // seed objects read
	Rows     int // data rows parsed into offers
	Rejected int // malformed rows skipped
	Offers   int // offers written after de-duplication
}

// Loader reads seed objects and writes their offers to a catalog.
type Loader struct {
	catalog     repository.CatalogWriter
	concurrency int
	logger      *slog.Logger
}

// NewLoader builds a Loader. cfg may be nil.
func NewLoader(catalog repository.CatalogWriter, cfg *config.CatalogConfig, logger *slog.Logger) *Loader {
	concurrency := defaultConcurrency
	if cfg != nil && cfg.SeedConcurrency > 0 {
		concurrency = cfg.SeedConcurrency
	}

	return &Loader{catalog: catalog, concurrency: concurrency, logger: logger}
}

// LoadURL opens the bucket at bucketURL (file://, gs://, mem://) and loads it.
func (l *Loader) LoadURL(ctx context.Context, bucketURL, prefix string) (Stats, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return Stats{}, errors.Wrapf(err, "open seed bucket %s", bucketURL)
	}
	defer func() { _ = bucket.Close() }()

	return l.Load(ctx, bucket, prefix)
}

// Load reads every .csv and .csv.gz object under prefix concurrently, then
// upserts the offers in key order. When several rows name the same product
// and seller, the last one read wins.
func (l *Loader) Load(ctx context.Context, bucket *blob.Bucket, prefix string) (Stats, error) {
	keys, err := listSeedKeys(ctx, bucket, prefix)
	if err != nil {
		return Stats{}, err
	}

	parsed := make([]objectRows, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, key := range keys {
		g.Go(func() error {
			rows, err := l.readObject(gctx, bucket, key)
			if err != nil {
				return errors.Wrapf(err, "read seed object %s", key)
			}
			parsed[i] = rows

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{Objects: len(keys)}
	latest := make(map[string]*entity.Offer)
	order := make([]string, 0)
	for _, rows := range parsed {
		stats.Rows += len(rows.offers)
		stats.Rejected += rows.rejected
		for _, offer := range rows.offers {
			id := offer.Key() + "\x00" + offer.SellerID
			if _, seen := latest[id]; !seen {
				order = append(order, id)
			}
			latest[id] = offer
		}
	}

	for _, id := range order {
		if err := l.catalog.UpsertOffer(ctx, latest[id]); err != nil {
			return stats, errors.Wrapf(err, "upsert seed offer %q", latest[id].ProductName)
		}
		stats.Offers++
	}

	l.logger.InfoContext(ctx, "[Seed] Catalog loaded",
		slog.Int("objects", stats.Objects),
		slog.Int("rows", stats.Rows),
		slog.Int("rejected", stats.Rejected),
		slog.Int("offers", stats.Offers),
	)

	return stats, nil
}

type objectRows struct {
	offers   []*entity.Offer
	rejected int
}

func listSeedKeys(ctx context.Context, bucket *blob.Bucket, prefix string) ([]string, error) {
	iter := bucket.List(&blob.ListOptions{Prefix: prefix})

	var keys []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list seed objects")
		}
		if obj.IsDir || !isSeedKey(obj.Key) {
			continue
		}
		keys = append(keys, obj.Key)
	}
	slices.Sort(keys)

	return keys, nil
}

func isSeedKey(key string) bool {
	key = strings.ToLower(key)

	return strings.HasSuffix(key, ".csv") || strings.HasSuffix(key, ".csv.gz")
}

func (l *Loader) readObject(ctx context.Context, bucket *blob.Bucket, key string) (objectRows, error) {
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return objectRows{}, err
	}
	defer func() { _ = r.Close() }()

	var src io.Reader = r
	if strings.HasSuffix(strings.ToLower(key), ".gz") {
		gz, err := pgzip.NewReader(r)
		if err != nil {
			return objectRows{}, errors.Wrap(err, "create gzip reader")
		}
		defer func() { _ = gz.Close() }()
		src = gz
	}

	return l.parse(ctx, key, src)
}

func (l *Loader) parse(ctx context.Context, key string, src io.Reader) (objectRows, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return objectRows{}, errors.Wrap(err, "read header")
	}
	if err := checkHeader(header); err != nil {
		return objectRows{}, err
	}
	reader.FieldsPerRecord = len(header)

	var out objectRows
	for {
		if err := ctx.Err(); err != nil {
			return objectRows{}, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) || !errors.Is(parseErr.Err, csv.ErrFieldCount) {
				return objectRows{}, errors.Wrap(err, "read row")
			}
			l.reject(ctx, key, parseErr.Line, err)
			out.rejected++

			continue
		}

		offer, err := parseRow(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			l.reject(ctx, key, line, err)
			out.rejected++

			continue
		}
		out.offers = append(out.offers, offer)
	}

	return out, nil
}

func (l *Loader) reject(ctx context.Context, key string, line int, err error) {
	l.logger.WarnContext(ctx, "[Seed] Row rejected",
		slog.String("object", key),
		slog.Int("line", line),
		slog.String("error", err.Error()),
	)
}

func checkHeader(header []string) error {
	want := Columns
	if len(header) == len(Columns)+1 {
		want = append(slices.Clone(Columns), DescriptionColumn)
	}
	if len(header) != len(want) {
		return errors.Errorf("header has %d columns, want %d or %d", len(header), len(Columns), len(Columns)+1)
	}
	for i, col := range header {
		if strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))) != want[i] {
			return errors.Errorf("header column %d is %q, want %q", i+1, col, want[i])
		}
	}

	return nil
}

func parseRow(record []string) (*entity.Offer, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	regular, err := decimal.NewFromString(record[2])
	if err != nil {
		return nil, errors.Wrap(err, "regular_price")
	}

	var sale decimal.NullDecimal
	if record[3] != "" {
		price, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, errors.Wrap(err, "sale_price")
		}
		sale = decimal.NewNullDecimal(price)
	}

	lat, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return nil, errors.Wrap(err, "latitude")
	}
	lng, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return nil, errors.Wrap(err, "longitude")
	}

	start, err := strconv.Atoi(record[6])
	if err != nil {
		return nil, errors.Wrap(err, "open_start")
	}
	end, err := strconv.Atoi(record[7])
	if err != nil {
		return nil, errors.Wrap(err, "open_end")
	}

	days, err := entity.ParseWeekdays(record[8])
	if err != nil {
		return nil, err
	}

	ratings, err := parseRatings(record[9])
	if err != nil {
		return nil, err
	}

	var description string
	if len(record) > len(Columns) {
		description = record[len(Columns)]
	}

	return entity.NewOffer(entity.OfferParams{
		ProductName:  record[0],
		SellerID:     record[1],
		Description:  description,
		RegularPrice: regular,
		SalePrice:    sale,
		Location:     entity.Coordinate{Lat: lat, Lng: lng},
		OpenHours:    entity.HourWindow{Start: start, End: end},
		OpenDays:     days,
		Ratings:      ratings,
	})
}

func parseRatings(field string) ([]int, error) {
	var ratings []int
	for _, part := range strings.Split(field, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrap(err, "ratings")
		}
		ratings = append(ratings, r)
	}

	return ratings, nil
}
