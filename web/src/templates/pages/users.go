package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
	hx "maragu.dev/gomponents-htmx"

	"github.com/warblerhq/warbler/internal/domain"
)

// UserCard is the view model for one user in a listing.
type UserCard struct {
	Key      string
	Username string
	Bio      string
	ImageURL string
}

// NewUserCard maps a domain user onto its listing view model.
func NewUserCard(u domain.User) UserCard {
	return UserCard{
		Key:      u.Key(),
		Username: u.Username,
		Bio:      u.Bio,
		ImageURL: u.ImageURL,
	}
}

// UserIndex renders the user directory with the search box.
func UserIndex(users []UserCard, query string) cmp.Node {
	return g.Div(
		g.Class("user-index"),
		g.Form(
			g.Method("GET"),
			g.Action("/users"),
			g.Input(g.Type("text"), g.Name("q"), g.Value(query), g.Placeholder("Search Warbler"), g.Class("form-control")),
			g.Button(g.Type("submit"), g.Class("btn"), cmp.Text("Search")),
		),
		userCardList(users),
	)
}

// UserProfile renders a user's page: header image, details and messages.
// The follow button is shown to signed-in viewers looking at someone else.
func UserProfile(user *domain.User, messages []MessageItem, viewerKey string, isFollowing bool) cmp.Node {
	return g.Div(
		g.Class("user-profile"),
		g.Div(
			g.Class("profile-header"),
			g.Img(g.Src(user.HeaderImageURL), g.Alt(""), g.Class("profile-header-image")),
			g.Img(g.Src(user.ImageURL), g.Alt(user.Username), g.Class("avatar avatar-lg")),
			g.H2(cmp.Text("@"+user.Username)),
			cmp.If(user.Location != "", g.P(g.Class("profile-location"), cmp.Text(user.Location))),
			cmp.If(user.Bio != "", g.P(g.Class("profile-bio"), cmp.Text(user.Bio))),
			profileActions(user, viewerKey, isFollowing),
		),
		g.Div(
			g.Class("profile-links"),
			g.A(g.Href("/users/"+user.Key()+"/following"), cmp.Text("Following")),
			g.A(g.Href("/users/"+user.Key()+"/followers"), cmp.Text("Followers")),
		),
		messageList(messages),
	)
}

// FollowList renders the following or followers page for a user.
func FollowList(title string, users []UserCard) cmp.Node {
	return g.Div(
		g.Class("follow-list"),
		g.H2(cmp.Text(title)),
		userCardList(users),
	)
}

func profileActions(user *domain.User, viewerKey string, isFollowing bool) cmp.Node {
	if viewerKey == "" {
		return nil
	}

	if viewerKey == user.Key() {
		return g.Div(
			g.Class("profile-actions"),
			g.A(g.Href("/users/profile"), g.Class("btn"), cmp.Text("Edit Profile")),
			g.Form(
				g.Method("POST"),
				g.Action("/users/delete"),
				g.Button(g.Type("submit"), g.Class("btn btn-danger"), cmp.Text("Delete Profile")),
			),
		)
	}

	action := "/users/follow/" + user.Key()
	label := "Follow"
	if isFollowing {
		action = "/users/stop-following/" + user.Key()
		label = "Unfollow"
	}

	return g.Form(
		g.Method("POST"),
		g.Action(action),
		hx.Boost("true"),
		g.Class("profile-actions"),
		g.Button(g.Type("submit"), g.Class("btn btn-primary"), cmp.Text(label)),
	)
}

func userCardList(users []UserCard) cmp.Node {
	if len(users) == 0 {
		return g.P(g.Class("user-list-empty"), cmp.Text("No users found."))
	}

	return g.Ul(
		g.Class("user-list"),
		cmp.Map(users, func(u UserCard) cmp.Node {
			return g.Li(
				g.Class("user-card"),
				g.A(
					g.Href("/users/"+u.Key),
					g.Img(g.Src(u.ImageURL), g.Alt(u.Username), g.Class("avatar")),
					g.Span(cmp.Text("@"+u.Username)),
				),
				cmp.If(u.Bio != "", g.P(g.Class("user-bio"), cmp.Text(u.Bio))),
			)
		}),
	)
}
