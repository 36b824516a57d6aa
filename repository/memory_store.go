package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/burakgns/istakip/models"
)

// MemoryStore, varsayılan map tabanlı backing.
//
// Tüm entity tabloları tek struct'ta toplanır ve tek bir RWMutex ile
// serialize edilir — teklif numarası üretimi gibi read-modify-write
// akışları bu sayede yarışsızdır. Test'ler her biri kendi izole
// MemoryStore instance'ını oluşturur; process-wide singleton YOKTUR.
//
// Kasıtlı olarak cascade delete yapılmaz: bir cari hesap silindiğinde
// projeleri/teklifleri/hareketleri yerinde kalır (kaynak davranış).
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	accounts     map[int64]models.Account
	quotes       map[int64]models.Quote
	projects     map[int64]models.Project
	tasks        map[int64]models.Task
	transactions map[int64]models.Transaction
	users        map[int64]models.User

	// nextID: entity ailesi → sıradaki identity.
	nextID map[string]int64

	// numbers: atanmış teklif/proje numaraları. Uniqueness kontrolü ve
	// NextNumber üretimi bu set üzerinden yapılır.
	numbers map[string]struct{}
}

// NewMemoryStore, boş bir in-memory store oluşturur.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:          func() time.Time { return time.Now().UTC() },
		accounts:     make(map[int64]models.Account),
		quotes:       make(map[int64]models.Quote),
		projects:     make(map[int64]models.Project),
		tasks:        make(map[int64]models.Task),
		transactions: make(map[int64]models.Transaction),
		users:        make(map[int64]models.User),
		nextID:       make(map[string]int64),
		numbers:      make(map[string]struct{}),
	}
}

// next, verilen entity ailesi için taze bir identity üretir.
// Çağıran write lock tutuyor olmalı.
func (s *MemoryStore) next(family string) int64 {
	s.nextID[family]++
	return s.nextID[family]
}

// nextNumber, prefix-yıl kapsamında sıradaki sıra numarasını üretir
// (ör: "TKF-2026-004"). Kullanıcı elle numara girmiş olabileceği için
// sayaç yerine atanmış numaralar taranır — ilk boş slot alınır.
// Çağıran write lock tutuyor olmalı.
func (s *MemoryStore) nextNumber(prefix string, year int) string {
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d-%03d", prefix, year, n)
		if _, taken := s.numbers[candidate]; !taken {
			return candidate
		}
	}
}

// claimNumber, numarayı atanmış olarak işaretler.
// Zaten atanmışsa false döner. Çağıran write lock tutuyor olmalı.
func (s *MemoryStore) claimNumber(number string) bool {
	if _, taken := s.numbers[number]; taken {
		return false
	}
	s.numbers[number] = struct{}{}
	return true
}

func (s *MemoryStore) releaseNumber(number string) {
	delete(s.numbers, number)
}
