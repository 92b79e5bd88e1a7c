package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound      = errors.New("ressource introuvable")
	ErrInvalidInput  = errors.New("entrée invalide")
	ErrDuplicate     = errors.New("ressource dupliquée")
	ErrConflict      = errors.New("conflit avec l'état actuel")
	ErrUnauthorized  = errors.New("non autorisé")
	ErrForbidden     = errors.New("accès refusé")
	ErrUnimplemented = errors.New("opération non implémentée")
)
