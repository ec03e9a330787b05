// Package localstore implementa el snapshot local clave-valor donde se
// espejan sesión, usuarios registrados y carrito. Valores JSON bajo claves
// de primer nivel; dos procesos sobre el mismo snapshot no se sincronizan
// entre sí (limitación documentada).
package localstore

// Claves de primer nivel del snapshot.
const (
	KeyCurrentUser = "currentUser"
	KeyToken       = "token"
	KeyUsers       = "users"
	KeyCartItems   = "cart_items"
)

// Store contrato mínimo del snapshot: valores JSON ya serializados.
// Get devuelve (nil, nil) cuando la clave no existe.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
