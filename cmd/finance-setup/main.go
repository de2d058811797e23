package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:5000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringServerURL step = iota
	stepEnteringFirstName
	stepEnteringLastName
	stepEnteringUsername
	stepEnteringEmail
	stepEnteringPassword
	stepSigningUp
	stepVerifyingSignin
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	firstName    string
	lastName     string
	username     string
	email        string
	password     string
	userID       string
	token        string
	currentInput string
	message      string
	quitting     bool
}

type signupSuccessMsg struct {
	userID string
	token  string
}
type signinSuccessMsg struct{ userID string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{step: stepEnteringServerURL}
}

func (m model) Init() tea.Cmd {
	return nil
}

type authPayload struct {
	ID    string `json:"_id"`
	Token string `json:"token"`
}

func signup(serverURL, firstName, lastName, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"firstname": firstName,
			"lastname":  lastName,
			"username":  username,
			"email":     email,
			"password":  password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/auth/signup", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			var apiErr struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
				return errMsg{fmt.Errorf("signup failed: %s", apiErr.Message)}
			}
			return errMsg{fmt.Errorf("signup failed with status %d", resp.StatusCode)}
		}

		var result authPayload
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected signup response: %w", err)}
		}
		if result.ID == "" || result.Token == "" {
			return errMsg{fmt.Errorf("signup response missing user id or token")}
		}

		return signupSuccessMsg{userID: result.ID, token: result.Token}
	}
}

func verifySignin(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{"email": email, "password": password}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/auth/signin", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("signin verification failed with status %d", resp.StatusCode)}
		}

		var result authPayload
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected signin response: %w", err)}
		}
		return signinSuccessMsg{userID: result.ID}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step <= stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringServerURL:
				m.serverURL = strings.TrimRight(m.currentInput, "/")
				if m.serverURL == "" {
					m.serverURL = defaultServerURL
				}
				m.currentInput = ""
				m.step = stepEnteringFirstName

			case stepEnteringFirstName:
				if m.currentInput != "" {
					m.firstName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringLastName
				}

			case stepEnteringLastName:
				if m.currentInput != "" {
					m.lastName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringUsername
				}

			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepSigningUp
					m.message = "Creating account..."
					return m, signup(m.serverURL, m.firstName, m.lastName, m.username, m.email, m.password)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case signupSuccessMsg:
		m.userID = msg.userID
		m.token = msg.token
		m.step = stepVerifyingSignin
		m.message = "Account created, verifying signin..."
		return m, verifySignin(m.serverURL, m.email, m.password)

	case signinSuccessMsg:
		m.step = stepComplete
		m.message = successStyle.Render(fmt.Sprintf("Account ready!\nUser ID: %s", m.userID))

	case errMsg:
		m.message = errorStyle.Render("Error: " + msg.err.Error())
		// Back to the first field; the server URL is kept
		m.step = stepEnteringFirstName
		m.currentInput = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Finance Tracker Setup\n\n"))
	if m.message != "" && m.step <= stepEnteringPassword {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepEnteringServerURL:
		s.WriteString(promptStyle.Render(fmt.Sprintf("Server URL (empty for %s):\n", defaultServerURL)))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringFirstName:
		s.WriteString(promptStyle.Render("First name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringLastName:
		s.WriteString(promptStyle.Render("Last name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepSigningUp, stepVerifyingSignin:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
