// Package memory holds the process-lifetime offer catalog.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/domain/repository"
)

// Catalog is an in-memory repository.CatalogRepository. Readers share an
// RWMutex read lock and receive copies, so callers may mutate what they get
// back without affecting the store.
type Catalog struct {
	mu    sync.RWMutex
	state *catalogState
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{state: newCatalogState()}
}

// NewRepository exposes a Catalog as its repository interfaces.
func NewRepository(c *Catalog) (repository.CatalogRepository, repository.TransactionManager) {
	return c, c
}

func (c *Catalog) FindOffersByProduct(ctx context.Context, productName string) ([]*entity.Offer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.FindOffersByProduct(ctx, productName)
}

func (c *Catalog) FindOffer(ctx context.Context, productName, sellerID string) (*entity.Offer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.FindOffer(ctx, productName, sellerID)
}

func (c *Catalog) FindOffersBySeller(ctx context.Context, sellerID string) ([]*entity.Offer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.FindOffersBySeller(ctx, sellerID)
}

func (c *Catalog) ListProductNames(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.ListProductNames(ctx)
}

func (c *Catalog) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.ListOffers(ctx)
}

func (c *Catalog) UpsertOffer(ctx context.Context, offer *entity.Offer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.UpsertOffer(ctx, offer)
}

func (c *Catalog) DeleteOffer(ctx context.Context, productName, sellerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.DeleteOffer(ctx, productName, sellerID)
}

func (c *Catalog) AppendRating(ctx context.Context, productName, sellerID string, rating int) (*entity.Offer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.AppendRating(ctx, productName, sellerID, rating)
}

// Execute runs fn under the write lock. Every offer fn changes is recorded
// first, and the records are replayed in reverse when fn fails or panics.
// fn must use the repository it is given; calling back into c would deadlock.
func (c *Catalog) Execute(ctx context.Context, fn func(catalog repository.CatalogRepository) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx := &txState{catalogState: c.state}
	committed := false
	defer func() {
		if !committed {
			tx.rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	committed = true

	return nil
}

// Len returns the number of stored offers.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, bySeller := range c.state.products {
		n += len(bySeller)
	}

	return n
}

// catalogState is the unsynchronized catalog. Keys are entity.ProductKey values.
type catalogState struct {
	products map[string]map[string]*entity.Offer
}

func newCatalogState() *catalogState {
	return &catalogState{products: make(map[string]map[string]*entity.Offer)}
}

func (s *catalogState) FindOffersByProduct(_ context.Context, productName string) ([]*entity.Offer, error) {
	bySeller := s.products[entity.ProductKey(productName)]
	offers := make([]*entity.Offer, 0, len(bySeller))
	for _, offer := range bySeller {
		offers = append(offers, offer.Clone())
	}
	sortBySeller(offers)

	return offers, nil
}

func (s *catalogState) FindOffer(_ context.Context, productName, sellerID string) (*entity.Offer, error) {
	offer, ok := s.products[entity.ProductKey(productName)][sellerID]
	if !ok {
		return nil, domainerrors.ErrOfferNotFound
	}

	return offer.Clone(), nil
}

func (s *catalogState) FindOffersBySeller(_ context.Context, sellerID string) ([]*entity.Offer, error) {
	offers := make([]*entity.Offer, 0)
	for _, bySeller := range s.products {
		if offer, ok := bySeller[sellerID]; ok {
			offers = append(offers, offer.Clone())
		}
	}
	slices.SortFunc(offers, func(a, b *entity.Offer) int {
		return cmp.Compare(a.Key(), b.Key())
	})

	return offers, nil
}

func (s *catalogState) ListProductNames(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(s.products))
	for key := range s.products {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, displayName(s.products[key]))
	}

	return names, nil
}

func (s *catalogState) ListOffers(_ context.Context) ([]*entity.Offer, error) {
	keys := make([]string, 0, len(s.products))
	for key := range s.products {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	offers := make([]*entity.Offer, 0)
	for _, key := range keys {
		group := make([]*entity.Offer, 0, len(s.products[key]))
		for _, offer := range s.products[key] {
			group = append(group, offer.Clone())
		}
		sortBySeller(group)
		offers = append(offers, group...)
	}

	return offers, nil
}

// UpsertOffer keeps the ID of a replaced offer and writes it back to offer.
func (s *catalogState) UpsertOffer(_ context.Context, offer *entity.Offer) error {
	if offer == nil {
		return domainerrors.ErrInvalidOffer.WithDetails("offer is required")
	}
	if err := offer.Validate(); err != nil {
		return err
	}

	key := offer.Key()
	bySeller, ok := s.products[key]
	if !ok {
		bySeller = make(map[string]*entity.Offer)
		s.products[key] = bySeller
	}
	if existing, ok := bySeller[offer.SellerID]; ok {
		offer.ID = existing.ID
	}
	bySeller[offer.SellerID] = offer.Clone()

	return nil
}

func (s *catalogState) DeleteOffer(_ context.Context, productName, sellerID string) error {
	key := entity.ProductKey(productName)
	bySeller := s.products[key]
	if _, ok := bySeller[sellerID]; !ok {
		return domainerrors.ErrOfferNotFound
	}

	delete(bySeller, sellerID)
	if len(bySeller) == 0 {
		delete(s.products, key)
	}

	return nil
}

func (s *catalogState) AppendRating(_ context.Context, productName, sellerID string, rating int) (*entity.Offer, error) {
	offer, ok := s.products[entity.ProductKey(productName)][sellerID]
	if !ok {
		return nil, domainerrors.ErrOfferNotFound
	}
	if err := offer.AddRating(rating); err != nil {
		return nil, err
	}

	return offer.Clone(), nil
}

// txState is the catalog as seen inside Execute. It keeps the prior value
// of each (product, seller) slot before writing to it.
type txState struct {
	*catalogState
	undo []undoEntry
}

type undoEntry struct {
	key      string
	sellerID string
	prev     *entity.Offer // nil when the slot was empty
}

func (t *txState) remember(productName, sellerID string) {
	key := entity.ProductKey(productName)
	t.undo = append(t.undo, undoEntry{
		key:      key,
		sellerID: sellerID,
		prev:     t.products[key][sellerID].Clone(),
	})
}

func (t *txState) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		entry := t.undo[i]
		bySeller := t.products[entry.key]

		if entry.prev == nil {
			delete(bySeller, entry.sellerID)
			if len(bySeller) == 0 {
				delete(t.products, entry.key)
			}

			continue
		}

		if bySeller == nil {
			bySeller = make(map[string]*entity.Offer)
			t.products[entry.key] = bySeller
		}
		bySeller[entry.sellerID] = entry.prev
	}
	t.undo = nil
}

func (t *txState) UpsertOffer(ctx context.Context, offer *entity.Offer) error {
	if offer != nil {
		t.remember(offer.ProductName, offer.SellerID)
	}

	return t.catalogState.UpsertOffer(ctx, offer)
}

func (t *txState) DeleteOffer(ctx context.Context, productName, sellerID string) error {
	t.remember(productName, sellerID)

	return t.catalogState.DeleteOffer(ctx, productName, sellerID)
}

func (t *txState) AppendRating(ctx context.Context, productName, sellerID string, rating int) (*entity.Offer, error) {
	t.remember(productName, sellerID)

	return t.catalogState.AppendRating(ctx, productName, sellerID, rating)
}

// displayName picks the product name of the lowest seller ID so the result
// does not depend on map order.
func displayName(bySeller map[string]*entity.Offer) string {
	var (
		name   string
		lowest string
		first  = true
	)
	for sellerID, offer := range bySeller {
		if first || sellerID < lowest {
			name, lowest, first = offer.ProductName, sellerID, false
		}
	}

	return name
}

func sortBySeller(offers []*entity.Offer) {
	slices.SortFunc(offers, func(a, b *entity.Offer) int {
		return cmp.Compare(a.SellerID, b.SellerID)
	})
}
