package usecase_test

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

// Fakes en mémoire des ports de persistance. Pas de tri ni de pagination
// réelle : les cas d'usage sont testés sur leurs règles métier, le SQL est
// couvert par les contraintes du schéma.

type fakeClientRepo struct {
	clients map[string]*entity.Client
	seq     int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(_ context.Context, _ repository.PageQuery) ([]*entity.Client, int, error) {
	list := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		list = append(list, c)
	}
	return list, len(list), nil
}

func (r *fakeClientRepo) Search(_ context.Context, _ string, page repository.PageQuery) ([]*entity.Client, int, error) {
	return r.List(context.Background(), page)
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) NextNumero(_ context.Context) (int, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeClientRepo) Stats(_ context.Context) (*repository.ClientStats, error) {
	s := &repository.ClientStats{Total: len(r.clients)}
	for _, c := range r.clients {
		if c.TypeClient == entity.TypeClientGrandCompte {
			s.GrandsComptes++
		} else {
			s.Normaux++
		}
	}
	return s, nil
}

type fakeVehiculeRepo struct {
	vehicules map[string]*entity.Vehicule
}

func newFakeVehiculeRepo() *fakeVehiculeRepo {
	return &fakeVehiculeRepo{vehicules: make(map[string]*entity.Vehicule)}
}

func (r *fakeVehiculeRepo) Create(_ context.Context, v *entity.Vehicule) error {
	r.vehicules[v.ID] = v
	return nil
}

func (r *fakeVehiculeRepo) GetByID(_ context.Context, id string) (*entity.Vehicule, error) {
	return r.vehicules[id], nil
}

func (r *fakeVehiculeRepo) GetByImmatriculation(_ context.Context, immatriculation string) (*entity.Vehicule, error) {
	for _, v := range r.vehicules {
		if v.Immatriculation == immatriculation {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVehiculeRepo) List(_ context.Context, _ repository.PageQuery) ([]*entity.Vehicule, int, error) {
	list := make([]*entity.Vehicule, 0, len(r.vehicules))
	for _, v := range r.vehicules {
		list = append(list, v)
	}
	return list, len(list), nil
}

func (r *fakeVehiculeRepo) ListByClient(_ context.Context, clientID string) ([]*entity.Vehicule, error) {
	var list []*entity.Vehicule
	for _, v := range r.vehicules {
		if v.ClientID == clientID {
			list = append(list, v)
		}
	}
	return list, nil
}

func (r *fakeVehiculeRepo) Search(_ context.Context, _ string, page repository.PageQuery) ([]*entity.Vehicule, int, error) {
	return r.List(context.Background(), page)
}

func (r *fakeVehiculeRepo) Update(_ context.Context, v *entity.Vehicule) error {
	r.vehicules[v.ID] = v
	return nil
}

func (r *fakeVehiculeRepo) Delete(_ context.Context, id string) error {
	delete(r.vehicules, id)
	return nil
}

func (r *fakeVehiculeRepo) CountByClient(_ context.Context, clientID string) (int, error) {
	n := 0
	for _, v := range r.vehicules {
		if v.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *fakeVehiculeRepo) Stats(_ context.Context) (*repository.VehiculeStats, error) {
	marques := make(map[string]bool)
	for _, v := range r.vehicules {
		marques[v.Marque] = true
	}
	return &repository.VehiculeStats{Total: len(r.vehicules), Marques: len(marques)}, nil
}

type fakeDevisRepo struct {
	devis map[string]*entity.Devis
	seq   int
}

func newFakeDevisRepo() *fakeDevisRepo {
	return &fakeDevisRepo{devis: make(map[string]*entity.Devis)}
}

func (r *fakeDevisRepo) Create(_ context.Context, d *entity.Devis) error {
	r.devis[d.ID] = d
	return nil
}

func (r *fakeDevisRepo) GetByID(_ context.Context, id string) (*entity.Devis, error) {
	return r.devis[id], nil
}

func (r *fakeDevisRepo) List(_ context.Context, _ repository.PageQuery) ([]*entity.Devis, int, error) {
	list := make([]*entity.Devis, 0, len(r.devis))
	for _, d := range r.devis {
		list = append(list, d)
	}
	return list, len(list), nil
}

func (r *fakeDevisRepo) Update(_ context.Context, d *entity.Devis) error {
	r.devis[d.ID] = d
	return nil
}

func (r *fakeDevisRepo) UpdateStatut(_ context.Context, id, statut string) error {
	r.devis[id].Statut = statut
	return nil
}

func (r *fakeDevisRepo) Delete(_ context.Context, id string) error {
	delete(r.devis, id)
	return nil
}

func (r *fakeDevisRepo) CountByVehicule(_ context.Context, vehiculeID string) (int, error) {
	n := 0
	for _, d := range r.devis {
		if d.VehiculeID == vehiculeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeDevisRepo) CountByClient(_ context.Context, clientID string) (int, error) {
	n := 0
	for _, d := range r.devis {
		if d.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *fakeDevisRepo) NextNumero(_ context.Context) (int, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeDevisRepo) Stats(_ context.Context) (*repository.DevisStats, error) {
	s := &repository.DevisStats{Total: len(r.devis)}
	for _, d := range r.devis {
		switch d.Statut {
		case entity.DevisEnAttente:
			s.EnAttente++
		case entity.DevisAccepte:
			s.Acceptes++
		case entity.DevisRefuse:
			s.Refuses++
		case entity.DevisExpire:
			s.Expires++
		}
	}
	return s, nil
}

type fakeODRRepo struct {
	odr map[string]*entity.OrdreReparation
	seq int
}

func newFakeODRRepo() *fakeODRRepo {
	return &fakeODRRepo{odr: make(map[string]*entity.OrdreReparation)}
}

func (r *fakeODRRepo) Create(_ context.Context, o *entity.OrdreReparation) error {
	r.odr[o.ID] = o
	return nil
}

func (r *fakeODRRepo) GetByID(_ context.Context, id string) (*entity.OrdreReparation, error) {
	return r.odr[id], nil
}

func (r *fakeODRRepo) List(_ context.Context, _ repository.PageQuery) ([]*entity.OrdreReparation, int, error) {
	list := make([]*entity.OrdreReparation, 0, len(r.odr))
	for _, o := range r.odr {
		list = append(list, o)
	}
	return list, len(list), nil
}

func (r *fakeODRRepo) Update(_ context.Context, o *entity.OrdreReparation) error {
	r.odr[o.ID] = o
	return nil
}

func (r *fakeODRRepo) UpdateStatut(_ context.Context, id, statut string) error {
	r.odr[id].Statut = statut
	return nil
}

func (r *fakeODRRepo) Delete(_ context.Context, id string) error {
	delete(r.odr, id)
	return nil
}

func (r *fakeODRRepo) CountByVehicule(_ context.Context, vehiculeID string) (int, error) {
	n := 0
	for _, o := range r.odr {
		if o.VehiculeID == vehiculeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeODRRepo) NextNumero(_ context.Context) (int, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeODRRepo) Stats(_ context.Context) (*repository.ODRStats, error) {
	s := &repository.ODRStats{Total: len(r.odr)}
	for _, o := range r.odr {
		switch o.Statut {
		case entity.ODREnCours:
			s.EnCours++
		case entity.ODRTermine:
			s.Termines++
		case entity.ODRAnnule:
			s.Annules++
		}
	}
	return s, nil
}

type fakeFactureRepo struct {
	factures map[string]*entity.Facture
	seq      int
}

func newFakeFactureRepo() *fakeFactureRepo {
	return &fakeFactureRepo{factures: make(map[string]*entity.Facture)}
}

func (r *fakeFactureRepo) Create(_ context.Context, f *entity.Facture) error {
	r.factures[f.ID] = f
	return nil
}

func (r *fakeFactureRepo) GetByID(_ context.Context, id string) (*entity.Facture, error) {
	return r.factures[id], nil
}

func (r *fakeFactureRepo) List(_ context.Context, _ repository.PageQuery) ([]*entity.Facture, int, error) {
	list := make([]*entity.Facture, 0, len(r.factures))
	for _, f := range r.factures {
		list = append(list, f)
	}
	return list, len(list), nil
}

func (r *fakeFactureRepo) Update(_ context.Context, f *entity.Facture) error {
	r.factures[f.ID] = f
	return nil
}

func (r *fakeFactureRepo) UpdateStatutPaiement(_ context.Context, id, statut string) error {
	r.factures[id].StatutPaiement = statut
	return nil
}

func (r *fakeFactureRepo) Delete(_ context.Context, id string) error {
	delete(r.factures, id)
	return nil
}

func (r *fakeFactureRepo) CountByClient(_ context.Context, clientID string) (int, error) {
	n := 0
	for _, f := range r.factures {
		if f.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *fakeFactureRepo) NextNumero(_ context.Context) (int, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeFactureRepo) Stats(_ context.Context) (*repository.FactureStats, error) {
	return &repository.FactureStats{Total: len(r.factures)}, nil
}

type fakeParametresRepo struct {
	parametres  *entity.Parametres
	createCalls int
}

func (r *fakeParametresRepo) GetFirst(_ context.Context) (*entity.Parametres, error) {
	return r.parametres, nil
}

func (r *fakeParametresRepo) Create(_ context.Context, p *entity.Parametres) error {
	r.createCalls++
	r.parametres = p
	return nil
}

func (r *fakeParametresRepo) Update(_ context.Context, p *entity.Parametres) error {
	r.parametres = p
	return nil
}

// fakeTxRunner exécute le callback directement sur le repo fourni, sans
// transaction.
type fakeTxRunner struct {
	repo repository.DevisRepository
}

func (r *fakeTxRunner) RunDevis(_ context.Context, fn func(repo repository.DevisRepository) error) error {
	return fn(r.repo)
}
