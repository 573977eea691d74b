package entity

// Role rol de un usuario del panel. Enumeración cerrada: cualquier valor fuera
// de estas tres constantes se considera inválido en la frontera de entrada.
type Role string

const (
	RoleAdministrador Role = "Administrador"
	RoleEditor        Role = "Editor"
	RoleRevendedor    Role = "Revendedor"
)

// Valid indica si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrador, RoleEditor, RoleRevendedor:
		return true
	}
	return false
}

// ResellerCategory tramo de precios del revendedor (cat1..cat5).
type ResellerCategory string

const (
	Cat1 ResellerCategory = "cat1"
	Cat2 ResellerCategory = "cat2"
	Cat3 ResellerCategory = "cat3"
	Cat4 ResellerCategory = "cat4"
	Cat5 ResellerCategory = "cat5"
)

// Valid indica si la categoría pertenece a cat1..cat5. Vacía también es válida
// (los usuarios que no son revendedores no tienen categoría).
func (c ResellerCategory) Valid() bool {
	switch c {
	case "", Cat1, Cat2, Cat3, Cat4, Cat5:
		return true
	}
	return false
}

// Session identidad autenticada del usuario actual. Invariante: Token y Role
// están ambos presentes o ambos ausentes; el almacén de credenciales descarta
// cualquier copia persistida que lo viole.
type Session struct {
	UserID   string           `json:"userId"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Role     Role             `json:"role"`
	Category ResellerCategory `json:"resellerCategory,omitempty"`
	Token    string           `json:"token"`
}

// Complete verifica el invariante token⇔rol.
func (s Session) Complete() bool {
	return s.Token != "" && s.Role.Valid()
}

// StoreAction operación de un almacén de recursos sujeta a permisos.
type StoreAction string

const (
	ActionList    StoreAction = "list"
	ActionGet     StoreAction = "get"
	ActionCreate  StoreAction = "create"
	ActionUpdate  StoreAction = "update"
	ActionDelete  StoreAction = "delete"
	ActionReorder StoreAction = "reorder"
	ActionStatus  StoreAction = "status"
	ActionReset   StoreAction = "reset"
)

// PermissionTable lista de roles permitidos por operación. Una acción sin
// entrada admite a cualquier usuario autenticado.
type PermissionTable map[StoreAction][]Role

// Allows indica si el rol puede ejecutar la acción.
func (t PermissionTable) Allows(action StoreAction, role Role) bool {
	allowed, ok := t[action]
	if !ok {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// Tablas de permisos de los recursos del panel. Declarativas para que las
// reglas queden en un solo lugar en vez de repartidas por los stores.
var (
	// CatalogPermissions productos, revendedores y contenido promocional:
	// borrar es exclusivo del administrador; crear y editar admiten editor.
	CatalogPermissions = PermissionTable{
		ActionCreate:  {RoleAdministrador, RoleEditor},
		ActionUpdate:  {RoleAdministrador, RoleEditor},
		ActionDelete:  {RoleAdministrador},
		ActionReorder: {RoleAdministrador, RoleEditor},
		ActionReset:   {RoleAdministrador},
	}

	// OrderPermissions los pedidos no se borran desde el panel salvo por el
	// administrador; el cambio de estado admite editor.
	OrderPermissions = PermissionTable{
		ActionCreate: {RoleAdministrador, RoleEditor},
		ActionUpdate: {RoleAdministrador, RoleEditor},
		ActionDelete: {RoleAdministrador},
		ActionStatus: {RoleAdministrador, RoleEditor},
	}
)
