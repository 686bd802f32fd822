package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/service"
)

// fakeDirectory is an in-memory RoleDirectory.
type fakeDirectory struct {
	users map[uuid.UUID]entity.User
	roles []entity.Role
}

func (d *fakeDirectory) User(_ context.Context, id uuid.UUID) (entity.User, error) {
	user, ok := d.users[id]
	if !ok {
		return entity.User{}, entity.ErrNotFound
	}

	return user, nil
}

func (d *fakeDirectory) RolesByParent(_ context.Context, parentID uuid.UUID) ([]entity.Role, error) {
	var children []entity.Role

	for _, role := range d.roles {
		if role.ParentID.Valid && role.ParentID.UUID == parentID {
			children = append(children, role)
		}
	}

	return children, nil
}

func nullID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func TestAccess_CanView(t *testing.T) {
	t.Parallel()

	// Role tree: ceo -> manager -> rep; lone is unrelated.
	ceoRole := entity.Role{ID: uuid.Must(uuid.NewV4()), Name: "CEO"}
	managerRole := entity.Role{ID: uuid.Must(uuid.NewV4()), Name: "Manager", ParentID: nullID(ceoRole.ID)}
	repRole := entity.Role{ID: uuid.Must(uuid.NewV4()), Name: "Rep", ParentID: nullID(managerRole.ID)}
	loneRole := entity.Role{ID: uuid.Must(uuid.NewV4()), Name: "Lone"}

	admin := entity.User{ID: uuid.Must(uuid.NewV4()), IsAdmin: true}
	ceo := entity.User{ID: uuid.Must(uuid.NewV4()), RoleID: nullID(ceoRole.ID)}
	manager := entity.User{ID: uuid.Must(uuid.NewV4()), RoleID: nullID(managerRole.ID)}
	rep := entity.User{ID: uuid.Must(uuid.NewV4()), RoleID: nullID(repRole.ID)}
	outsider := entity.User{ID: uuid.Must(uuid.NewV4()), RoleID: nullID(loneRole.ID)}
	roleless := entity.User{ID: uuid.Must(uuid.NewV4())}

	dir := &fakeDirectory{
		users: map[uuid.UUID]entity.User{
			admin.ID:    admin,
			ceo.ID:      ceo,
			manager.ID:  manager,
			rep.ID:      rep,
			outsider.ID: outsider,
			roleless.ID: roleless,
		},
		roles: []entity.Role{ceoRole, managerRole, repRole, loneRole},
	}

	access := service.NewAccess(dir)

	for _, tt := range []struct {
		name    string
		viewer  entity.User
		ownerID uuid.NullUUID
		shares  []entity.Share
		want    bool
	}{
		{
			name:    "admin sees everything",
			viewer:  admin,
			ownerID: nullID(rep.ID),
			want:    true,
		},
		{
			name:    "admin sees unowned records",
			viewer:  admin,
			ownerID: uuid.NullUUID{},
			want:    true,
		},
		{
			name:    "owner sees own record",
			viewer:  rep,
			ownerID: nullID(rep.ID),
			want:    true,
		},
		{
			name:    "manager sees rep's record",
			viewer:  manager,
			ownerID: nullID(rep.ID),
			want:    true,
		},
		{
			name:    "ceo sees rep's record two levels down",
			viewer:  ceo,
			ownerID: nullID(rep.ID),
			want:    true,
		},
		{
			name:    "rep does not see manager's record",
			viewer:  rep,
			ownerID: nullID(manager.ID),
			want:    false,
		},
		{
			name:    "sibling role sees nothing",
			viewer:  outsider,
			ownerID: nullID(rep.ID),
			want:    false,
		},
		{
			name:    "unowned record hidden from non-admins",
			viewer:  ceo,
			ownerID: uuid.NullUUID{},
			want:    false,
		},
		{
			name:    "read share grants access",
			viewer:  outsider,
			ownerID: nullID(rep.ID),
			shares: []entity.Share{
				{UserID: outsider.ID, CanRead: true},
			},
			want: true,
		},
		{
			name:    "share without read grants nothing",
			viewer:  outsider,
			ownerID: nullID(rep.ID),
			shares: []entity.Share{
				{UserID: outsider.ID, CanWrite: true},
			},
			want: false,
		},
		{
			name:    "share for someone else grants nothing",
			viewer:  outsider,
			ownerID: nullID(rep.ID),
			shares: []entity.Share{
				{UserID: roleless.ID, CanRead: true},
			},
			want: false,
		},
		{
			name:    "viewer without role relies on shares only",
			viewer:  roleless,
			ownerID: nullID(rep.ID),
			want:    false,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := access.CanView(context.Background(), tt.viewer, tt.ownerID, tt.shares)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAccess_CanWrite(t *testing.T) {
	t.Parallel()

	owner := entity.User{ID: uuid.Must(uuid.NewV4())}
	other := entity.User{ID: uuid.Must(uuid.NewV4())}

	dir := &fakeDirectory{users: map[uuid.UUID]entity.User{owner.ID: owner, other.ID: other}}
	access := service.NewAccess(dir)

	ok, err := access.CanWrite(context.Background(), other, nullID(owner.ID), []entity.Share{
		{UserID: other.ID, CanRead: true},
	})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = access.CanWrite(context.Background(), other, nullID(owner.ID), []entity.Share{
		{UserID: other.ID, CanWrite: true},
	})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAccess_RoleCycle(t *testing.T) {
	t.Parallel()

	// a and b are each other's parents. The walk must terminate and
	// still answer correctly.
	aID := uuid.Must(uuid.NewV4())
	bID := uuid.Must(uuid.NewV4())

	a := entity.Role{ID: aID, Name: "a", ParentID: nullID(bID)}
	b := entity.Role{ID: bID, Name: "b", ParentID: nullID(aID)}

	inA := entity.User{ID: uuid.Must(uuid.NewV4()), RoleID: nullID(aID)}
	inB := entity.User{ID: uuid.Must(uuid.NewV4()), RoleID: nullID(bID)}
	stranger := entity.User{ID: uuid.Must(uuid.NewV4())}

	dir := &fakeDirectory{
		users: map[uuid.UUID]entity.User{inA.ID: inA, inB.ID: inB, stranger.ID: stranger},
		roles: []entity.Role{a, b},
	}

	access := service.NewAccess(dir)

	ok, err := access.CanView(context.Background(), inA, nullID(inB.ID), nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = access.CanView(context.Background(), inA, nullID(stranger.ID), nil)
	require.NoError(t, err)
	require.False(t, ok)
}
