package handler

import (
	"context"
	"strings"

	"github.com/ericoliveiras/painel-admin/internal/catalog"
	"github.com/ericoliveiras/painel-admin/internal/model"
	"github.com/ericoliveiras/painel-admin/internal/service"
	"github.com/ericoliveiras/painel-admin/internal/validation"
	"github.com/ericoliveiras/painel-admin/internal/view"
)

// Opcoes alimenta as listas de seleção das telas.
type Opcoes struct {
	Paises        []catalog.Pais
	Marcas        []model.Marca
	Produtos      []model.ProdutoResumo
	Cores         []string
	Tamanhos      []string
	Generos       []string
	Status        []string
	TiposDesconto []string
}

func opcoesFixas() Opcoes {
	return Opcoes{
		Paises:        catalog.Padrao().Paises(),
		Cores:         model.CoresDisponiveis,
		Tamanhos:      model.TamanhosDisponiveis,
		Generos:       []string{model.GeneroFeminino, model.GeneroMasculino, model.GeneroOutro},
		Status:        []string{model.StatusAtivo, model.StatusInativo},
		TiposDesconto: []string{model.DescontoPercentual, model.DescontoValorFixo},
	}
}

func semConsulta(context.Context) (Opcoes, error) {
	return opcoesFixas(), nil
}

func texto(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TelaClientes() Tela[model.Cliente, validation.ClienteForm] {
	return Tela[model.Cliente, validation.ClienteForm]{
		Rota:          "/clientes",
		Template:      "clientes",
		Titulo:        "Clientes",
		TituloNovo:    "Novo cliente",
		TituloEditar:  "Editar cliente",
		TituloExcluir: "Excluir cliente",
		Criado:        "Cliente cadastrado com sucesso!",
		Atualizado:    "Cliente atualizado com sucesso!",
		Excluido:      "Cliente excluído com sucesso!",
		NaoEncontrado: "Cliente não encontrado.",
		FormVazio: func() validation.ClienteForm {
			return validation.ClienteForm{Pais: catalog.PaisPadrao}
		},
		FormDe: func(c *model.Cliente) validation.ClienteForm {
			return validation.ClienteForm{
				Nome:            c.Nome,
				Sobrenome:       c.Sobrenome,
				TelefoneOuEmail: c.TelefoneOuEmail,
				Genero:          c.Genero,
				DataNascimento:  view.DataISO(c.DataNascimento),
				Cidade:          texto(c.Cidade),
				Bairro:          texto(c.Bairro),
				Pais:            texto(c.Pais),
				Estado:          texto(c.Estado),
				RuaAvenida:      texto(c.RuaAvenida),
				Numero:          validation.ValorDe(c.Numero),
			}
		},
		Descrever: func(c *model.Cliente) string { return c.NomeCompleto() },
		Opcoes:    semConsulta,
	}
}

func TelaProdutos(opcoes *service.Opcoes) Tela[model.Produto, validation.ProdutoForm] {
	return Tela[model.Produto, validation.ProdutoForm]{
		Rota:          "/produtos",
		Template:      "produtos",
		Titulo:        "Produtos",
		TituloNovo:    "Novo produto",
		TituloEditar:  "Editar produto",
		TituloExcluir: "Excluir produto",
		Criado:        "Produto cadastrado com sucesso!",
		Atualizado:    "Produto atualizado com sucesso!",
		Excluido:      "Produto excluído com sucesso!",
		NaoEncontrado: "Produto não encontrado.",
		FormVazio: func() validation.ProdutoForm {
			return validation.ProdutoForm{QuantidadeEstoque: "0"}
		},
		FormDe: func(p *model.Produto) validation.ProdutoForm {
			return validation.ProdutoForm{
				NomeProduto:          p.NomeProduto,
				Tipo:                 p.Tipo,
				MarcaID:              p.MarcaID,
				Tamanho:              p.Tamanho,
				Cor:                  p.Cor,
				Preco:                validation.NovoValor(p.Preco),
				QuantidadeEstoque:    validation.NovoValor(float64(p.QuantidadeEstoque)),
				ImagemURL:            p.ImagemURL,
				Tecido:               p.Tecido,
				CaracteristicasTexto: strings.Join(p.Caracteristicas, "\n"),
			}
		},
		Descrever: func(p *model.Produto) string { return p.NomeProduto },
		Opcoes: func(ctx context.Context) (Opcoes, error) {
			o := opcoesFixas()
			marcas, err := opcoes.Marcas(ctx)
			if err != nil {
				return o, err
			}
			o.Marcas = marcas
			return o, nil
		},
	}
}

func TelaFornecedores() Tela[model.Fornecedor, validation.FornecedorForm] {
	return Tela[model.Fornecedor, validation.FornecedorForm]{
		Rota:          "/fornecedores",
		Template:      "fornecedores",
		Titulo:        "Fornecedores",
		TituloNovo:    "Novo fornecedor",
		TituloEditar:  "Editar fornecedor",
		TituloExcluir: "Excluir fornecedor",
		Criado:        "Fornecedor cadastrado com sucesso!",
		Atualizado:    "Fornecedor atualizado com sucesso!",
		Excluido:      "Fornecedor excluído com sucesso!",
		NaoEncontrado: "Fornecedor não encontrado.",
		FormVazio: func() validation.FornecedorForm {
			return validation.FornecedorForm{Pais: catalog.PaisPadrao, Status: model.StatusAtivo}
		},
		FormDe: func(f *model.Fornecedor) validation.FornecedorForm {
			return validation.FornecedorForm{
				Nome:               f.Nome,
				CpfCnpj:            f.CpfCnpj,
				Pais:               f.Pais,
				Estado:             f.Estado,
				Cidade:             f.Cidade,
				Bairro:             texto(f.Bairro),
				RuaAvenida:         texto(f.RuaAvenida),
				Numero:             validation.ValorDe(f.Numero),
				Telefone:           texto(f.Telefone),
				Email:              texto(f.Email),
				ProdutosFornecidos: texto(f.ProdutosFornecidos),
				Status:             f.Status,
			}
		},
		Descrever: func(f *model.Fornecedor) string { return f.Nome },
		Opcoes:    semConsulta,
	}
}

func TelaPromocoes(opcoes *service.Opcoes) Tela[model.Promocao, validation.PromocaoForm] {
	return Tela[model.Promocao, validation.PromocaoForm]{
		Rota:          "/promocoes",
		Template:      "promocoes",
		Titulo:        "Promoções",
		TituloNovo:    "Nova promoção",
		TituloEditar:  "Editar promoção",
		TituloExcluir: "Excluir promoção",
		Criado:        "Promoção cadastrada com sucesso!",
		Atualizado:    "Promoção atualizada com sucesso!",
		Excluido:      "Promoção excluída com sucesso!",
		NaoEncontrado: "Promoção não encontrada.",
		FormVazio: func() validation.PromocaoForm {
			return validation.PromocaoForm{TipoDesconto: model.DescontoPercentual, Status: model.StatusAtivo}
		},
		FormDe: func(p *model.Promocao) validation.PromocaoForm {
			return validation.PromocaoForm{
				Nome:                 p.Nome,
				TipoDesconto:         p.TipoDesconto,
				ValorDesconto:        validation.NovoValor(p.ValorDesconto),
				ProdutosAplicaveis:   p.ProdutosAplicaveis,
				AplicarTodosProdutos: p.AplicarTodosProdutos,
				DataInicio:           view.DataISO(p.DataInicio),
				DataTermino:          view.DataISO(p.DataTermino),
				CodigoPromocional:    texto(p.CodigoPromocional),
				LimiteUso:            validation.ValorDe(p.LimiteUso),
				Status:               p.Status,
			}
		},
		Descrever: func(p *model.Promocao) string { return p.Nome },
		Opcoes: func(ctx context.Context) (Opcoes, error) {
			o := opcoesFixas()
			produtos, err := opcoes.ProdutosResumo(ctx)
			if err != nil {
				return o, err
			}
			o.Produtos = produtos
			return o, nil
		},
	}
}
