package store

import (
	"fmt"
	"sync"
	"time"

	"qapro_back_end/internal/models"
)

// Store est la "base de données" en mémoire du démonstrateur : un catalogue
// produits et un registre de commandes. Tout repart du seed au redémarrage,
// c'est voulu — aucune persistance dans cet environnement.
type Store struct {
	mu   sync.Mutex
	data Data
}

// Data est l'état brut du magasin. On n'y accède qu'à travers Store.Do,
// qui tient le verrou global : c'est l'unique section critique du système.
type Data struct {
	Products []models.Product
	Orders   []models.Order // plus récente en premier

	lastOrderMs int64
}

func New(products []models.Product) *Store {
	s := &Store{}
	s.data.Products = append([]models.Product(nil), products...)
	return s
}

// Do exécute fn sous le verrou du magasin. fn voit l'état mutable
// directement ; une erreur de fn est propagée telle quelle, sans rollback —
// c'est à fn de ne modifier l'état qu'une fois toutes les validations faites.
func (s *Store) Do(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// ListProducts retourne une copie du catalogue dans l'ordre d'insertion.
func (s *Store) ListProducts() []models.Product {
	var out []models.Product
	_ = s.Do(func(d *Data) error {
		out = append(out, d.Products...)
		return nil
	})
	return out
}

func (s *Store) GetProduct(id string) (models.Product, bool) {
	var (
		product models.Product
		found   bool
	)
	_ = s.Do(func(d *Data) error {
		if p := d.FindProduct(id); p != nil {
			product = *p
			found = true
		}
		return nil
	})
	return product, found
}

// UpdateProduct remplace le produit portant le même ID. No-op si absent.
func (s *Store) UpdateProduct(p models.Product) {
	_ = s.Do(func(d *Data) error {
		for i := range d.Products {
			if d.Products[i].ID == p.ID {
				d.Products[i] = p
				break
			}
		}
		return nil
	})
}

// DeleteProduct retire le produit du catalogue. No-op si absent.
func (s *Store) DeleteProduct(id string) {
	_ = s.Do(func(d *Data) error {
		for i := range d.Products {
			if d.Products[i].ID == id {
				d.Products = append(d.Products[:i], d.Products[i+1:]...)
				break
			}
		}
		return nil
	})
}

// ListOrders retourne une copie du registre, la plus récente en premier.
func (s *Store) ListOrders() []models.Order {
	var out []models.Order
	_ = s.Do(func(d *Data) error {
		out = append(out, d.Orders...)
		return nil
	})
	return out
}

// FindProduct retourne un pointeur mutable vers le produit, ou nil.
// À n'utiliser que depuis une closure passée à Do.
func (d *Data) FindProduct(id string) *models.Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// AppendOrder insère la commande en tête du registre.
func (d *Data) AppendOrder(o models.Order) {
	d.Orders = append([]models.Order{o}, d.Orders...)
}

// NextOrderID dérive l'identifiant de commande du temps courant, en forçant
// la stricte monotonie des millisecondes : deux commandes dans la même
// milliseconde ne peuvent pas produire le même ID.
func (d *Data) NextOrderID(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= d.lastOrderMs {
		ms = d.lastOrderMs + 1
	}
	d.lastOrderMs = ms
	return fmt.Sprintf("ORD-%d", ms)
}
