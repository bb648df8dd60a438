package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/panela/internal/app"
	"github.com/hammamikhairi/panela/internal/domain"
)

// profileScreen identifies the screens of the account stack.
type profileScreen int

const (
	screenUser profileScreen = iota
	screenLogin
	screenCreate
	screenForgot
)

// profileModel implements the account flow: user page, login, account
// creation and the forgot-password stub. Validation errors never leave
// the form; they render as inline field messages.
type profileModel struct {
	state  *app.State
	screen profileScreen

	// Login form.
	loginEmail    textinput.Model
	loginPassword textinput.Model
	loginRemember bool
	loginFocus    int // 0 email, 1 password, 2 remember
	loginEmailErr string
	loginPassErr  string

	// Create-account form.
	createName     textinput.Model
	createEmail    textinput.Model
	createPassword textinput.Model
	createFocus    int
	createEmailErr string
	createSuccess  string

	// Forgot-password form.
	forgotEmail   textinput.Model
	forgotErr     string
	forgotSuccess string
}

func newFormInput(prompt, placeholder string, secure bool) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = 100
	in.Width = 36
	if secure {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func newProfileModel(state *app.State) profileModel {
	return profileModel{
		state:          state,
		loginEmail:     newFormInput("E-mail: ", "Insira o seu e-mail", false),
		loginPassword:  newFormInput("Senha:  ", "Insira a sua senha", true),
		createName:     newFormInput("Nome:   ", "Insira o seu nome", false),
		createEmail:    newFormInput("E-mail: ", "Insira o seu e-mail", false),
		createPassword: newFormInput("Senha:  ", "Insira a sua senha", true),
		forgotEmail:    newFormInput("E-mail: ", "Insira o seu e-mail", false),
	}
}

// resetForms clears every field and message, mirroring the original
// focus-effect resets.
func (p *profileModel) resetForms() {
	p.screen = screenUser

	p.loginEmail.SetValue("")
	p.loginPassword.SetValue("")
	p.loginRemember = false
	p.loginFocus = 0
	p.loginEmailErr = ""
	p.loginPassErr = ""

	p.createName.SetValue("")
	p.createEmail.SetValue("")
	p.createPassword.SetValue("")
	p.createFocus = 0
	p.createEmailErr = ""
	p.createSuccess = ""

	p.forgotEmail.SetValue("")
	p.forgotErr = ""
	p.forgotSuccess = ""

	p.blurAll()
}

func (p *profileModel) blurAll() {
	for _, in := range p.inputs() {
		in.Blur()
	}
}

func (p *profileModel) inputs() []*textinput.Model {
	return []*textinput.Model{
		&p.loginEmail, &p.loginPassword,
		&p.createName, &p.createEmail, &p.createPassword,
		&p.forgotEmail,
	}
}

func (p profileModel) capturingInput() bool {
	for _, in := range p.inputs() {
		if in.Focused() {
			return true
		}
	}
	return false
}

func (p profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch p.screen {
	case screenUser:
		return p.updateUser(key)
	case screenLogin:
		return p.updateLogin(key)
	case screenCreate:
		return p.updateCreate(key)
	case screenForgot:
		return p.updateForgot(key)
	}
	return p, nil
}

func (p profileModel) updateUser(key tea.KeyMsg) (profileModel, tea.Cmd) {
	if p.state.Accounts.Current() != nil {
		if key.String() == "s" {
			if err := p.state.Accounts.Logout(context.Background()); err != nil {
				return p, func() tea.Msg { return storageErrMsg{err: err} }
			}
		}
		return p, nil
	}
	if key.String() == "enter" {
		p.screen = screenLogin
		p.loginFocus = 0
		return p, p.loginEmail.Focus()
	}
	return p, nil
}

func (p profileModel) updateLogin(key tea.KeyMsg) (profileModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		p.blurAll()
		p.screen = screenUser
		return p, nil
	case "ctrl+n":
		p.blurAll()
		p.screen = screenCreate
		p.createFocus = 0
		return p, p.createName.Focus()
	case "ctrl+p":
		p.blurAll()
		p.screen = screenForgot
		return p, p.forgotEmail.Focus()
	case "tab", "down":
		return p.moveLoginFocus(1)
	case "shift+tab", "up":
		return p.moveLoginFocus(-1)
	case "enter":
		return p.submitLogin()
	case " ":
		if p.loginFocus == 2 {
			p.loginRemember = !p.loginRemember
			return p, nil
		}
	}

	// Typing clears the field's error, like the original onChangeText.
	var cmd tea.Cmd
	switch p.loginFocus {
	case 0:
		p.loginEmail, cmd = p.loginEmail.Update(key)
		p.loginEmailErr = ""
	case 1:
		p.loginPassword, cmd = p.loginPassword.Update(key)
		p.loginPassErr = ""
	}
	return p, cmd
}

func (p profileModel) moveLoginFocus(delta int) (profileModel, tea.Cmd) {
	p.blurAll()
	p.loginFocus = (p.loginFocus + delta + 3) % 3
	switch p.loginFocus {
	case 0:
		return p, p.loginEmail.Focus()
	case 1:
		return p, p.loginPassword.Focus()
	}
	return p, nil
}

func (p profileModel) submitLogin() (profileModel, tea.Cmd) {
	ctx := context.Background()
	email := p.loginEmail.Value()
	password := p.loginPassword.Value()

	account, err := p.state.Accounts.Authenticate(ctx, email, password)
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		p.loginEmailErr = "Por favor, insira um e-mail válido."
		return p, nil
	case errors.Is(err, domain.ErrShortPassword):
		p.loginPassErr = "A senha deve ter pelo menos 6 caracteres."
		return p, nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		p.loginEmailErr = "Usuário ou senha inválidos."
		return p, nil
	case err != nil:
		p.loginEmailErr = "Ocorreu um erro ao fazer login. Tente novamente."
		return p, nil
	}

	if err := p.state.Accounts.Login(ctx, account, p.loginRemember); err != nil {
		return p, func() tea.Msg { return storageErrMsg{err: err} }
	}
	p.blurAll()
	p.screen = screenUser
	return p, nil
}

func (p profileModel) updateCreate(key tea.KeyMsg) (profileModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		p.blurAll()
		p.screen = screenLogin
		p.loginFocus = 0
		return p, p.loginEmail.Focus()
	case "tab", "down":
		return p.moveCreateFocus(1)
	case "shift+tab", "up":
		return p.moveCreateFocus(-1)
	case "enter":
		return p.submitCreate()
	}

	var cmd tea.Cmd
	switch p.createFocus {
	case 0:
		p.createName, cmd = p.createName.Update(key)
	case 1:
		p.createEmail, cmd = p.createEmail.Update(key)
		p.createEmailErr = ""
	case 2:
		p.createPassword, cmd = p.createPassword.Update(key)
	}
	return p, cmd
}

func (p profileModel) moveCreateFocus(delta int) (profileModel, tea.Cmd) {
	p.blurAll()
	p.createFocus = (p.createFocus + delta + 3) % 3
	switch p.createFocus {
	case 0:
		return p, p.createName.Focus()
	case 1:
		return p, p.createEmail.Focus()
	}
	return p, p.createPassword.Focus()
}

func (p profileModel) submitCreate() (profileModel, tea.Cmd) {
	ctx := context.Background()
	p.createEmailErr = ""
	p.createSuccess = ""

	err := p.state.Accounts.Create(ctx, p.createName.Value(), p.createEmail.Value(), p.createPassword.Value())
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		p.createEmailErr = "Por favor, insira um e-mail válido."
	case errors.Is(err, domain.ErrDuplicateEmail):
		p.createEmailErr = "E-mail já registrado."
	case err != nil:
		return p, func() tea.Msg { return storageErrMsg{err: err} }
	default:
		p.createSuccess = "Conta criada com sucesso, já poderá realizar o login."
		p.createName.SetValue("")
		p.createEmail.SetValue("")
		p.createPassword.SetValue("")
	}
	return p, nil
}

func (p profileModel) updateForgot(key tea.KeyMsg) (profileModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		p.blurAll()
		p.screen = screenLogin
		p.loginFocus = 0
		return p, p.loginEmail.Focus()
	case "enter":
		return p.submitForgot()
	}

	var cmd tea.Cmd
	p.forgotEmail, cmd = p.forgotEmail.Update(key)
	p.forgotErr = ""
	return p, cmd
}

func (p profileModel) submitForgot() (profileModel, tea.Cmd) {
	p.forgotErr = ""
	p.forgotSuccess = ""

	registered, err := p.state.Accounts.EmailRegistered(context.Background(), p.forgotEmail.Value())
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		p.forgotErr = "Por favor, insira um e-mail válido."
	case err != nil:
		p.forgotErr = "Ocorreu um erro ao enviar a solicitação. Tente novamente."
	case !registered:
		p.forgotErr = "E-mail não registrado."
	default:
		p.forgotSuccess = "Em breve você receberá instruções para redefinir sua senha."
	}
	return p, nil
}

func (p profileModel) view(t Theme, width int) string {
	switch p.screen {
	case screenLogin:
		return p.viewLogin(t)
	case screenCreate:
		return p.viewCreate(t)
	case screenForgot:
		return p.viewForgot(t)
	}
	return p.viewUser(t)
}

func (p profileModel) viewUser(t Theme) string {
	var b strings.Builder
	if cur := p.state.Accounts.Current(); cur != nil {
		name := cur.Name
		if name == "" {
			name = cur.Email
		}
		b.WriteString("  " + t.Title.Render("Bem-vindo, "+name+"!") + "\n\n")
		b.WriteString(t.Dim.Render("  s sair") + "\n")
	} else {
		b.WriteString("  " + t.Text.Render("Você não está logado.") + "\n\n")
		b.WriteString(t.Dim.Render("  enter ir para login") + "\n")
	}
	return b.String()
}

func (p profileModel) viewLogin(t Theme) string {
	var b strings.Builder
	b.WriteString("  " + t.Title.Render("Faça login na sua conta") + "\n\n")

	b.WriteString("  " + p.loginEmail.View() + "\n")
	if p.loginEmailErr != "" {
		b.WriteString("  " + t.Error.Render(p.loginEmailErr) + "\n")
	}
	b.WriteString("  " + p.loginPassword.View() + "\n")
	if p.loginPassErr != "" {
		b.WriteString("  " + t.Error.Render(p.loginPassErr) + "\n")
	}

	remember := check(p.loginRemember) + "Lembrar de mim"
	style := t.Checkbox
	if p.loginFocus == 2 {
		style = t.Selected
	}
	b.WriteString("  " + style.Render(remember) + "\n\n")

	b.WriteString(t.Dim.Render("  enter entrar · ctrl+n criar conta · ctrl+p esqueceu a senha · esc voltar") + "\n")
	return b.String()
}

func (p profileModel) viewCreate(t Theme) string {
	var b strings.Builder
	b.WriteString("  " + t.Title.Render("Crie uma nova conta") + "\n\n")

	if p.createSuccess != "" {
		b.WriteString("  " + t.Success.Render(p.createSuccess) + "\n\n")
	}

	b.WriteString("  " + p.createName.View() + "\n")
	b.WriteString("  " + p.createEmail.View() + "\n")
	if p.createEmailErr != "" {
		b.WriteString("  " + t.Error.Render(p.createEmailErr) + "\n")
	}
	b.WriteString("  " + p.createPassword.View() + "\n\n")

	b.WriteString(t.Dim.Render("  enter criar conta · esc voltar para login") + "\n")
	return b.String()
}

func (p profileModel) viewForgot(t Theme) string {
	var b strings.Builder
	b.WriteString("  " + t.Title.Render("Esqueceu sua senha?") + "\n\n")

	b.WriteString("  " + p.forgotEmail.View() + "\n")
	if p.forgotErr != "" {
		b.WriteString("  " + t.Error.Render(p.forgotErr) + "\n")
	}
	if p.forgotSuccess != "" {
		b.WriteString("  " + t.Success.Render(p.forgotSuccess) + "\n")
	}
	b.WriteString("\n" + t.Dim.Render("  enter enviar · esc voltar para login") + "\n")
	return b.String()
}
