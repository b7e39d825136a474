package repository

// GenericRepository is the CRUD surface shared by every gorm-backed
// repository. Delete is a soft delete; HardDelete removes the row.
type GenericRepository[T any] interface {
	Create(entity *T) error
	FindByID(id uint) (*T, error)
	FindAll() ([]T, error)
	Update(entity *T) error
	Delete(id uint) error
	HardDelete(entity *T) error
	Count() (int64, error)
}
