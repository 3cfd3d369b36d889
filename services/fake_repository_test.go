package services

import (
	"fiber-tracker/models"
)

// fakeStore is the in-memory backing state shared by fakeRepo and fakeTx.
type fakeStore struct {
	clients          map[string]models.Client
	inbounds         map[int64]models.InboundHeader
	outbounds        map[string]models.OutboundHeader
	inboundProducts  []models.InboundProduct
	outboundProducts []models.OutboundProduct
	nextID           int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients:   make(map[string]models.Client),
		inbounds:  make(map[int64]models.InboundHeader),
		outbounds: make(map[string]models.OutboundHeader),
		nextID:    1000,
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addClient(name, email string) {
	s.clients[name] = models.Client{ID: s.id(), Name: name, Email: email}
}

func (s *fakeStore) addInbound(id int64, clientName string, subscribed bool) {
	s.inbounds[id] = models.InboundHeader{ID: id, ClientName: clientName, IsSubscribed: subscribed}
}

func (s *fakeStore) addOutbound(number string) int64 {
	id := s.id()
	s.outbounds[number] = models.OutboundHeader{ID: id, OutboundNo: number}
	return id
}

func (s *fakeStore) addInboundProduct(inboundID int64, product, serial, value, status string) int64 {
	id := s.id()
	s.inboundProducts = append(s.inboundProducts, models.InboundProduct{
		ID:           id,
		InboundId:    inboundID,
		Product:      product,
		SerialNumber: serial,
		Value:        value,
		Status:       status,
	})
	return id
}

func (s *fakeStore) inboundProductBySerial(serial string) *models.InboundProduct {
	for i := range s.inboundProducts {
		if s.inboundProducts[i].SerialNumber == serial {
			return &s.inboundProducts[i]
		}
	}
	return nil
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.nextID = s.nextID
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.inbounds {
		c.inbounds[k] = v
	}
	for k, v := range s.outbounds {
		c.outbounds[k] = v
	}
	c.inboundProducts = append([]models.InboundProduct(nil), s.inboundProducts...)
	c.outboundProducts = append([]models.OutboundProduct(nil), s.outboundProducts...)
	return c
}

// fakeRepo implements Repository over a fakeStore, with injectable
// failures for fault testing.
type fakeRepo struct {
	store *fakeStore

	failCreateOutboundBulk error
	failMarkBulk           error
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) FindClientByName(name string) (*models.Client, error) {
	if c, ok := r.store.clients[name]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindInboundByID(id int64) (*models.InboundHeader, error) {
	if h, ok := r.store.inbounds[id]; ok {
		return &h, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindOutboundByNumber(number string) (*models.OutboundHeader, error) {
	if h, ok := r.store.outbounds[number]; ok {
		return &h, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindInboundProductBySerial(serial string) (*models.InboundProduct, error) {
	if p := r.store.inboundProductBySerial(serial); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindInboundProductsBySerials(serials []string) ([]models.InboundProduct, error) {
	want := make(map[string]bool, len(serials))
	for _, s := range serials {
		want[s] = true
	}
	var out []models.InboundProduct
	for _, p := range r.store.inboundProducts {
		if want[p.SerialNumber] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindExistingSerials(serials []string) ([]string, error) {
	want := make(map[string]bool, len(serials))
	for _, s := range serials {
		want[s] = true
	}
	var out []string
	for _, p := range r.store.inboundProducts {
		if want[p.SerialNumber] {
			out = append(out, p.SerialNumber)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateInboundProduct(p *models.InboundProduct) error {
	p.ID = r.store.id()
	r.store.inboundProducts = append(r.store.inboundProducts, *p)
	return nil
}

func (r *fakeRepo) CreateInboundProductsBulk(ps []models.InboundProduct) (int64, error) {
	for i := range ps {
		ps[i].ID = r.store.id()
		r.store.inboundProducts = append(r.store.inboundProducts, ps[i])
	}
	return int64(len(ps)), nil
}

func (r *fakeRepo) CreateOutboundProduct(p *models.OutboundProduct) error {
	p.ID = r.store.id()
	r.store.outboundProducts = append(r.store.outboundProducts, *p)
	return nil
}

func (r *fakeRepo) CreateOutboundProductsBulk(ps []models.OutboundProduct) (int64, error) {
	if r.failCreateOutboundBulk != nil {
		return 0, r.failCreateOutboundBulk
	}
	for i := range ps {
		ps[i].ID = r.store.id()
		r.store.outboundProducts = append(r.store.outboundProducts, ps[i])
	}
	return int64(len(ps)), nil
}

func (r *fakeRepo) FindOutboundProductByID(id int64) (*models.OutboundProduct, error) {
	for i := range r.store.outboundProducts {
		if r.store.outboundProducts[i].ID == id {
			cp := r.store.outboundProducts[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) DeleteOutboundProduct(id int64) error {
	for i := range r.store.outboundProducts {
		if r.store.outboundProducts[i].ID == id {
			r.store.outboundProducts = append(r.store.outboundProducts[:i], r.store.outboundProducts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRepo) MarkInboundProductOut(id int64) (int64, error) {
	for i := range r.store.inboundProducts {
		p := &r.store.inboundProducts[i]
		if p.ID == id && p.Status == models.StatusIn {
			p.Status = models.StatusOut
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeRepo) MarkInboundProductsOutBulk(ids []int64) (int64, error) {
	if r.failMarkBulk != nil {
		return 0, r.failMarkBulk
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var affected int64
	for i := range r.store.inboundProducts {
		p := &r.store.inboundProducts[i]
		if want[p.ID] && p.Status == models.StatusIn {
			p.Status = models.StatusOut
			affected++
		}
	}
	return affected, nil
}

func (r *fakeRepo) RestoreInboundProduct(id int64) error {
	for i := range r.store.inboundProducts {
		if r.store.inboundProducts[i].ID == id {
			r.store.inboundProducts[i].Status = models.StatusIn
		}
	}
	return nil
}

// fakeTx snapshots the store before running the callback and restores it
// when the callback fails, mirroring a rolled back transaction.
type fakeTx struct {
	repo *fakeRepo
}

var _ TxRunner = (*fakeTx)(nil)

func (t *fakeTx) RunTransaction(fn func(repo Repository) error) error {
	snapshot := t.repo.store.clone()
	if err := fn(t.repo); err != nil {
		*t.repo.store = *snapshot
		return err
	}
	return nil
}

// recordingMailer captures dispatch notices for assertions.
type recordingMailer struct {
	notices []dispatchNotice
}

type dispatchNotice struct {
	To         string
	Client     string
	OutboundNo string
	Serials    []string
}

func (m *recordingMailer) SendDispatchNotice(to, clientName, outboundNo string, serials []string) error {
	m.notices = append(m.notices, dispatchNotice{To: to, Client: clientName, OutboundNo: outboundNo, Serials: serials})
	return nil
}

func newTestTransferService(store *fakeStore, mailer DispatchMailer) *TransferService {
	repo := &fakeRepo{store: store}
	return NewTransferService(&fakeTx{repo: repo}, repo, mailer)
}

func newTestInboundService(store *fakeStore) *InboundService {
	repo := &fakeRepo{store: store}
	return NewInboundService(&fakeTx{repo: repo})
}
